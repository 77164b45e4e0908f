package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCitations_NoLinks(t *testing.T) {
	text := "전세 보증금은 임대차 종료 시 반환되어야 합니다."

	cleaned, sources := ExtractCitations(text, nil)

	assert.Equal(t, text, cleaned)
	assert.Empty(t, sources)
}

func TestExtractCitations_StripsLinkSyntax(t *testing.T) {
	text := "자세한 내용은 [주택임대차보호법](https://example.com/lease)을 참고하세요."

	cleaned, sources := ExtractCitations(text, nil)

	assert.Equal(t, "자세한 내용은 주택임대차보호법을 참고하세요.", cleaned)
	require.Len(t, sources, 1)
	assert.Equal(t, "주택임대차보호법", sources[0].Title)
	assert.Equal(t, "https://example.com/lease", sources[0].URL)
}

func TestExtractCitations_SeedsComeFirst(t *testing.T) {
	seeds := []LegalDocument{
		{Title: "근로기준법 제36조", SourceURL: "https://example.com/labor36"},
		{Title: "최저임금법", SourceURL: "https://example.com/minwage"},
	}
	text := "추가로 [민법 제623조](https://example.com/civil623)도 관련됩니다."

	_, sources := ExtractCitations(text, seeds)

	require.Len(t, sources, 3)
	assert.Equal(t, "https://example.com/labor36", sources[0].URL)
	assert.Equal(t, "https://example.com/minwage", sources[1].URL)
	assert.Equal(t, "https://example.com/civil623", sources[2].URL)
}

func TestExtractCitations_DedupesByURL(t *testing.T) {
	seeds := []LegalDocument{
		{Title: "근로기준법 제36조", SourceURL: "https://example.com/labor36"},
	}
	// The model cites the seeded document again under a different label.
	text := "[금품 청산 규정](https://example.com/labor36)에 따라 14일 이내 지급해야 합니다."

	cleaned, sources := ExtractCitations(text, seeds)

	assert.Equal(t, "금품 청산 규정에 따라 14일 이내 지급해야 합니다.", cleaned)
	require.Len(t, sources, 1)
	// The seed's title wins over the inline label.
	assert.Equal(t, "근로기준법 제36조", sources[0].Title)
}

func TestExtractCitations_MultipleLinksScannedLeftToRight(t *testing.T) {
	text := "[가](https://example.com/a) 그리고 [나](https://example.com/b) 참고."

	cleaned, sources := ExtractCitations(text, nil)

	assert.Equal(t, "가 그리고 나 참고.", cleaned)
	require.Len(t, sources, 2)
	assert.Equal(t, "https://example.com/a", sources[0].URL)
	assert.Equal(t, "https://example.com/b", sources[1].URL)
}

func TestExtractCitations_IgnoresNonHTTPTargets(t *testing.T) {
	text := "파일은 [여기](file:///tmp/doc.pdf)에 있습니다."

	cleaned, sources := ExtractCitations(text, nil)

	assert.Equal(t, text, cleaned)
	assert.Empty(t, sources)
}

func TestExtractCitations_RoundTripWithPromptContext(t *testing.T) {
	docs := []LegalDocument{
		{Title: "주택임대차보호법 제7조의3 - 수선의무", SourceURL: "https://example.com/repair", Content: "수선의무"},
	}

	// A well-behaved response cites a document exactly as the prompt's
	// citation hint spells it.
	response := "[주택임대차보호법 제7조의3 - 수선의무](https://example.com/repair)에 따르면 임대인이 수선의무를 부담합니다."

	cleaned, sources := ExtractCitations(response, docs)

	assert.Equal(t, "주택임대차보호법 제7조의3 - 수선의무에 따르면 임대인이 수선의무를 부담합니다.", cleaned)
	require.Len(t, sources, 1)
	assert.Equal(t, docs[0].SourceURL, sources[0].URL)
}

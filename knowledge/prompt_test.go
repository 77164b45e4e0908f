package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPrompt_Empty(t *testing.T) {
	assert.Equal(t, "", FormatForPrompt(nil))
	assert.Equal(t, "", FormatForPrompt([]LegalDocument{}))
}

func TestFormatForPrompt_NumbersDocumentsInOrder(t *testing.T) {
	docs := []LegalDocument{
		{Title: "근로기준법 제36조", Content: "금품 청산", SourceURL: "https://example.com/a"},
		{Title: "주택임대차보호법 제7조", Content: "차임 증감", SourceURL: "https://example.com/b"},
	}

	out := FormatForPrompt(docs)

	first := strings.Index(out, "[참고자료 1]")
	second := strings.Index(out, "[참고자료 2]")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	assert.Contains(t, out, "근로기준법 제36조")
	assert.Contains(t, out, "주택임대차보호법 제7조")
	assert.Contains(t, out, "https://example.com/a")
	assert.Contains(t, out, "https://example.com/b")
}

func TestFormatForPrompt_CitationHintPerDocument(t *testing.T) {
	docs := []LegalDocument{
		{Title: "최저임금법", Content: "시급", SourceURL: "https://example.com/minwage"},
		{Title: "민법 제623조", Content: "수선의무", SourceURL: "https://example.com/repair"},
	}

	out := FormatForPrompt(docs)

	// Each source gets its own title/URL pair so the model can cite precisely.
	assert.Contains(t, out, "[최저임금법](https://example.com/minwage)")
	assert.Contains(t, out, "[민법 제623조](https://example.com/repair)")
}

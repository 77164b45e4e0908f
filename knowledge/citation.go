package knowledge

import (
	"regexp"
	"strings"
)

// citationPattern matches markdown-style links whose target is an http(s)
// URL: [label](https://example.com). Partial or unbalanced brackets do not
// match and pass through untouched.
var citationPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)

// ExtractCitations collects source attributions for a model response.
//
// The documents that were supplied as prompt context are seeded first, one
// Citation per document in order. The response text is then scanned left to
// right for markdown citations; each match is appended unless a citation
// with the same URL is already present. The scan advances past each match's
// end, so matches never overlap. The returned text has the link syntax
// stripped, leaving only the visible label.
func ExtractCitations(responseText string, seedDocuments []LegalDocument) (string, []Citation) {
	sources := make([]Citation, 0, len(seedDocuments))
	seen := make(map[string]bool, len(seedDocuments))
	for _, doc := range seedDocuments {
		sources = append(sources, Citation{Title: doc.Title, URL: doc.SourceURL})
		seen[doc.SourceURL] = true
	}

	var cleaned strings.Builder
	offset := 0
	for offset < len(responseText) {
		loc := citationPattern.FindStringSubmatchIndex(responseText[offset:])
		if loc == nil {
			break
		}

		start, end := offset+loc[0], offset+loc[1]
		label := responseText[offset+loc[2] : offset+loc[3]]
		url := responseText[offset+loc[4] : offset+loc[5]]

		cleaned.WriteString(responseText[offset:start])
		cleaned.WriteString(label)

		if !seen[url] {
			seen[url] = true
			sources = append(sources, Citation{Title: label, URL: url})
		}

		offset = end
	}
	cleaned.WriteString(responseText[offset:])

	return cleaned.String(), sources
}

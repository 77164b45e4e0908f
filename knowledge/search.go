package knowledge

import (
	"sort"
	"strings"
)

// Scoring weights for keyword-overlap retrieval
const (
	titleMatchScore   = 10
	contentMatchScore = 5
	keywordMatchScore = 3
)

type scoredDocument struct {
	doc   LegalDocument
	score int
}

// Search scores every document in the corpus against the query and returns
// the top matches by score, at most limit documents.
//
// Scoring: +10 if the title contains the full query (case-insensitive),
// +5 if the content does, and +3 for every query token and document keyword
// where either string contains the other. Documents scoring 0 are dropped.
// Ties keep corpus order, so identical inputs always produce identical
// output.
//
// An empty or whitespace-only query returns no documents: it produces no
// tokens, and the vacuous "empty string is a substring of everything" match
// is deliberately not applied to the title/content checks.
func (c *Corpus) Search(query string, category Category, limit int) []LegalDocument {
	if limit <= 0 {
		return nil
	}

	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil
	}
	queryTokens := strings.Fields(queryLower)

	scored := make([]scoredDocument, 0, len(c.documents))
	for _, doc := range c.documents {
		if category != "" && doc.Category != category {
			continue
		}

		score := 0
		if strings.Contains(strings.ToLower(doc.Title), queryLower) {
			score += titleMatchScore
		}
		if strings.Contains(strings.ToLower(doc.Content), queryLower) {
			score += contentMatchScore
		}

		for _, token := range queryTokens {
			for _, keyword := range doc.Keywords {
				keywordLower := strings.ToLower(keyword)
				if strings.Contains(keywordLower, token) || strings.Contains(token, keywordLower) {
					score += keywordMatchScore
				}
			}
		}

		if score > 0 {
			scored = append(scored, scoredDocument{doc: doc, score: score})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]LegalDocument, len(scored))
	for i, s := range scored {
		results[i] = s.doc
	}
	return results
}

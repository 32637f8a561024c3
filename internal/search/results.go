/*
Package search ranks catalog tools against free-text queries.

The primary engine is Ranker: additive exact/prefix/substring/keyword scoring,
a Levenshtein-based fuzzy bonus for near-miss keywords, and a static popularity
prior. Indexer offers an alternative BM25 engine backed by Bleve.
*/
package search

import "github.com/khanglvm/toolbelt/internal/catalog"

// DefaultLimit is the number of results returned when the caller passes a non-positive limit.
const DefaultLimit = 20

// ScoredResult pairs a tool record with its relevance score for one query.
type ScoredResult struct {
	catalog.ToolRecord
	Score int `json:"score"`
}

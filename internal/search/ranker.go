package search

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/khanglvm/toolbelt/internal/catalog"
)

// Score contributions. Every rule is additive and evaluated independently.
const (
	exactTitleScore     = 1000
	titlePrefixScore    = 500
	titleContainsScore  = 300
	exactCategoryScore  = 200
	exactKeywordScore   = 150
	keywordContainScore = 75
	descContainsScore   = 50

	termTitleScore    = 100
	termDescScore     = 25
	termCategoryScore = 75
	termKeywordScore  = 50

	fuzzyMinLength = 3
	fuzzyThreshold = 0.7
	fuzzyMaxScore  = 30

	popularityDivisor = 10
)

// Ranker scores an injected, read-only catalog against queries.
type Ranker struct {
	catalog *catalog.Catalog
}

// NewRanker creates a ranker over c.
func NewRanker(c *catalog.Catalog) *Ranker {
	return &Ranker{catalog: c}
}

// Search ranks the catalog against query. See Rank.
func (r *Ranker) Search(query string, limit int) []ScoredResult {
	return Rank(query, r.catalog.Records(), limit)
}

// Popular returns the most popular tools regardless of any query.
func (r *Ranker) Popular(limit int) []ScoredResult {
	return PopularTools(r.catalog.Records(), limit)
}

// Rank scores every record against query and returns those with a positive
// score, highest first, at most limit of them. Equal scores keep catalog order.
//
// The popularity prior is added unconditionally, so a record that matches
// nothing still passes the score > 0 filter when its popularity is 10 or more.
func Rank(query string, records []catalog.ToolRecord, limit int) []ScoredResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []ScoredResult{}
	}
	terms := strings.Fields(q)

	results := make([]ScoredResult, 0, len(records))
	for _, rec := range records {
		score := scoreRecord(q, terms, rec)
		if score > 0 {
			results = append(results, ScoredResult{ToolRecord: rec, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreRecord computes the total score of rec for the normalized query q.
func scoreRecord(q string, terms []string, rec catalog.ToolRecord) int {
	title := strings.ToLower(rec.Title)
	desc := strings.ToLower(rec.Description)
	category := strings.ToLower(rec.Category)
	keywords := make([]string, len(rec.Keywords))
	for i, kw := range rec.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	score := 0

	if title == q {
		score += exactTitleScore
	}
	if strings.HasPrefix(title, q) {
		score += titlePrefixScore
	}
	if strings.Contains(title, q) {
		score += titleContainsScore
	}
	if category == q {
		score += exactCategoryScore
	}
	for _, kw := range keywords {
		if kw == q {
			score += exactKeywordScore
		} else if strings.Contains(kw, q) {
			score += keywordContainScore
		}
	}
	if strings.Contains(desc, q) {
		score += descContainsScore
	}

	for _, term := range terms {
		if strings.Contains(title, term) {
			score += termTitleScore
		}
		if strings.Contains(desc, term) {
			score += termDescScore
		}
		if strings.Contains(category, term) {
			score += termCategoryScore
		}
		for _, kw := range keywords {
			if strings.Contains(kw, term) {
				score += termKeywordScore
			}
		}
	}

	score += fuzzyScore(terms, keywords)
	score += rec.Popularity / popularityDivisor

	return score
}

// fuzzyScore rewards query terms that are close misspellings of keywords.
func fuzzyScore(terms, keywords []string) int {
	score := 0
	for _, term := range terms {
		if utf8.RuneCountInString(term) < fuzzyMinLength {
			continue
		}
		for _, kw := range keywords {
			if utf8.RuneCountInString(kw) < fuzzyMinLength {
				continue
			}
			if sim := Similarity(term, kw); sim > fuzzyThreshold {
				score += int(math.Floor(sim * fuzzyMaxScore))
			}
		}
	}
	return score
}

// PopularTools returns records ordered by popularity (highest first),
// scored by their popularity, at most limit of them.
func PopularTools(records []catalog.ToolRecord, limit int) []ScoredResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]ScoredResult, len(records))
	for i, rec := range records {
		results[i] = ScoredResult{ToolRecord: rec, Score: rec.Popularity}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

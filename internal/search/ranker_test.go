package search

import (
	"testing"

	"github.com/khanglvm/toolbelt/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_EmptyQuery(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "PDF Merger", Popularity: 90}}

	for _, q := range []string{"", " ", "\t\n  "} {
		results := Rank(q, records, 10)
		assert.NotNil(t, results)
		assert.Empty(t, results, "query %q", q)
	}
}

func TestRank_FullScoreBreakdown(t *testing.T) {
	records := []catalog.ToolRecord{{
		Title:       "PDF Merger",
		Description: "Combine PDF files",
		Category:    "PDF",
		Keywords:    []string{"combine", "pdf"},
		Popularity:  92,
	}}

	results := Rank("pdf merger", records, 10)
	require.Len(t, results, 1)

	// exact+prefix+substring title (1800), term "pdf" (title 100, desc 25,
	// category 75, keyword 50), term "merger" (title 100), fuzzy pdf~pdf (30),
	// popularity 92/10 (9).
	assert.Equal(t, 2189, results[0].Score)
}

func TestRank_CaseInsensitiveCategory(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "X", Category: "PDF"}}

	lower := Rank("pdf", records, 10)
	upper := Rank("PDF", records, 10)

	require.Len(t, lower, 1)
	require.Len(t, upper, 1)
	// exact category 200 + term category 75
	assert.Equal(t, 275, lower[0].Score)
	assert.Equal(t, lower[0].Score, upper[0].Score)
}

func TestRank_ExactTitleOutranksSubstring(t *testing.T) {
	records := []catalog.ToolRecord{
		{Title: "Advanced PDF Merger Tool", Popularity: 50},
		{Title: "PDF Merger", Popularity: 50},
	}

	results := Rank("PDF Merger", records, 10)
	require.Len(t, results, 2)
	assert.Equal(t, "PDF Merger", results[0].Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRank_KeywordRules(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "Z", Keywords: []string{"compress"}}}

	// keyword exact 150 + term keyword 50 + fuzzy (1.0 * 30)
	results := Rank("compress", records, 10)
	require.Len(t, results, 1)
	assert.Equal(t, 230, results[0].Score)

	// keyword contains 75 + term keyword 50 + fuzzy floor(7/8 * 30) = 26
	results = Rank("compres", records, 10)
	require.Len(t, results, 1)
	assert.Equal(t, 151, results[0].Score)
}

func TestRank_FuzzyMatchOnMisspelling(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "Z", Keywords: []string{"timestamp"}}}

	// "timestnmp" is one substitution away: similarity 8/9, floor(26.66) = 26.
	results := Rank("timestnmp", records, 10)
	require.Len(t, results, 1)
	assert.Equal(t, 26, results[0].Score)
}

func TestRank_ShortTermsSkipFuzzy(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "Z", Keywords: []string{"hex"}}}

	results := Rank("hx", records, 10)
	assert.Empty(t, results)
}

func TestRank_PopularityPriorSurvivesFilter(t *testing.T) {
	// A record that matches nothing is still returned when popularity >= 10,
	// because the prior is added before the score > 0 filter.
	records := []catalog.ToolRecord{
		{Title: "Unrelated", Popularity: 50},
		{Title: "Obscure", Popularity: 5},
	}

	results := Rank("zzzz", records, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Unrelated", results[0].Title)
	assert.Equal(t, 5, results[0].Score)
}

func TestRank_AllScoresPositive(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	for _, q := range []string{"pdf", "image compress", "jsn", "convert time", "qwerty"} {
		for _, r := range Rank(q, c.Records(), 50) {
			assert.Greater(t, r.Score, 0, "query %q tool %s", q, r.Title)
		}
	}
}

func TestRank_SortedAndStable(t *testing.T) {
	records := []catalog.ToolRecord{
		{Title: "Alpha Tool", Keywords: []string{"shared"}},
		{Title: "Beta Tool", Keywords: []string{"shared"}},
		{Title: "Gamma", Keywords: []string{"shared", "shared"}},
	}

	results := Rank("shared", records, 10)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}

	assert.Equal(t, "Gamma", results[0].Title)
	assert.Equal(t, "Alpha Tool", results[1].Title)
	assert.Equal(t, "Beta Tool", results[2].Title)
	assert.Equal(t, results[1].Score, results[2].Score)

	// Reversing the catalog reverses the tie order.
	reversed := []catalog.ToolRecord{records[1], records[0]}
	results = Rank("shared", reversed, 10)
	require.Len(t, results, 2)
	assert.Equal(t, "Beta Tool", results[0].Title)
	assert.Equal(t, "Alpha Tool", results[1].Title)
}

func TestRank_Truncation(t *testing.T) {
	records := []catalog.ToolRecord{
		{Title: "a", Keywords: []string{"tool"}, Popularity: 10},
		{Title: "b", Keywords: []string{"tool"}, Popularity: 50},
		{Title: "c", Keywords: []string{"tool"}, Popularity: 30},
		{Title: "d", Keywords: []string{"tool"}, Popularity: 90},
		{Title: "e", Keywords: []string{"tool"}, Popularity: 20},
	}

	results := Rank("tool", records, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "d", results[0].Title)
	assert.Equal(t, "b", results[1].Title)
}

func TestRank_DefaultLimit(t *testing.T) {
	records := make([]catalog.ToolRecord, 30)
	for i := range records {
		records[i] = catalog.ToolRecord{Title: string(rune('a' + i)), Keywords: []string{"tool"}}
	}

	assert.Len(t, Rank("tool", records, 0), DefaultLimit)
	assert.Len(t, Rank("tool", records, -5), DefaultLimit)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []catalog.ToolRecord{{Title: "PDF Merger", Keywords: []string{"MERGE"}}}
	Rank("merge", records, 10)
	assert.Equal(t, "MERGE", records[0].Keywords[0])
}

func TestPopularTools(t *testing.T) {
	records := []catalog.ToolRecord{
		{Title: "a", Popularity: 40},
		{Title: "b", Popularity: 95},
		{Title: "c", Popularity: 70},
		{Title: "d", Popularity: 70},
		{Title: "e", Popularity: 10},
	}

	results := PopularTools(records, 3)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].Title)
	assert.Equal(t, "c", results[1].Title)
	assert.Equal(t, "d", results[2].Title)
	assert.Equal(t, 95, results[0].Score)
}

func TestRanker_UsesInjectedCatalog(t *testing.T) {
	c, err := catalog.New([]catalog.ToolRecord{
		{Title: "JSON Formatter", Keywords: []string{"json"}, Popularity: 90},
		{Title: "PDF Merger", Popularity: 80},
	})
	require.NoError(t, err)

	r := NewRanker(c)

	results := r.Search("json", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "JSON Formatter", results[0].Title)

	popular := r.Popular(1)
	require.Len(t, popular, 1)
	assert.Equal(t, "JSON Formatter", popular[0].Title)
}

func TestRanker_DefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	r := NewRanker(c)

	tests := []struct {
		query string
		want  string
	}{
		{"pdf merger", "PDF Merger"},
		{"json", "JSON Formatter"},
		{"markdown", "Markdown to HTML"},
		{"epoch", "Unix Timestamp Converter"},
		{"hexadecimal", "Number Base Converter"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := r.Search(tt.query, 5)
			require.NotEmpty(t, results)
			assert.Equal(t, tt.want, results[0].Title)
		})
	}
}

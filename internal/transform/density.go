package transform

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "this": true, "to": true,
	"was": true, "were": true, "will": true, "with": true, "you": true, "your": true,
}

// WordCount is one row of a keyword density report.
type WordCount struct {
	Word    string
	Count   int
	Density float64
}

// KeywordDensity reports the most frequent words and their share of the text.
//
// Options:
//   - top: number of rows (default 10)
//   - min: minimum word length in characters (default 1)
//   - stopwords: "exclude" drops common English words from the ranking
func KeywordDensity(input string, opts Options) Result {
	words := splitWords(input)
	if len(words) == 0 {
		return fail("input has no words")
	}

	top := opts.Int("top", 10)
	if top <= 0 {
		return fail("top must be positive")
	}
	rows, total := Density(words, opts.Int("min", 1), opts.Get("stopwords", "") == "exclude")

	var b strings.Builder
	fmt.Fprintf(&b, "total words: %d\n", total)
	fmt.Fprintf(&b, "unique words: %d\n\n", len(rows))

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WORD\tCOUNT\tDENSITY")
	for i, row := range rows {
		if i >= top {
			break
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\n", row.Word, row.Count, row.Density)
	}
	tw.Flush()

	return Result{Output: strings.TrimRight(b.String(), "\n")}
}

// Density counts words of at least minLen characters. Density is relative to
// that total; stop words still count toward it when excluded from the rows.
// Rows are ordered by count descending, then alphabetically.
func Density(words []string, minLen int, excludeStopWords bool) ([]WordCount, int) {
	counts := make(map[string]int)
	total := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLen {
			continue
		}
		total++
		if excludeStopWords && stopWords[w] {
			continue
		}
		counts[w]++
	}

	rows := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		rows = append(rows, WordCount{Word: w, Count: c, Density: float64(c) / float64(total) * 100})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Word < rows[j].Word
	})

	return rows, total
}

// splitWords lowercases text and splits it into words of letters, digits and apostrophes.
func splitWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	words := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			words = append(words, f)
		}
	}
	return words
}

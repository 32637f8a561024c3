package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/khanglvm/toolbelt/internal/search"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResults writes ranked tools as a numbered list.
func printResults(w io.Writer, results []search.ScoredResult, showScore bool) {
	for i, r := range results {
		if showScore {
			fmt.Fprintf(w, "%2d. %s [%s] (score %d)\n", i+1, r.Title, r.Category, r.Score)
		} else {
			fmt.Fprintf(w, "%2d. %s [%s]\n", i+1, r.Title, r.Category)
		}
		fmt.Fprintf(w, "    %s\n", r.Description)
		fmt.Fprintf(w, "    %s\n", r.Href)
	}
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

package cli

import (
	"fmt"

	"github.com/khanglvm/toolbelt/internal/config"
	"github.com/khanglvm/toolbelt/internal/search"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the 'search' command.
func NewSearchCmd(g *Globals) *cobra.Command {
	var limit int
	var jsonOutput bool
	var engine string
	var category string

	cmd := &cobra.Command{
		Use:     "search <query...>",
		Aliases: []string{"s", "find"},
		Short:   "Search the tool catalog",
		Long: `Rank catalog tools against a free-text query.

Exact and prefix title matches rank highest, followed by category, keyword
and description matches. Near-miss spellings of keywords still score, and
popular tools get a small boost. The query is added to recent searches.`,
		Example: `  toolbelt search compress pdf
  toolbelt search json --limit 3 --json
  toolbelt search resize --category image
  toolbelt search "merge documents" --engine bm25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, g, joinArgs(args), limit, engine, category, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVarP(&engine, "engine", "e", "", "Ranking engine: ranker or bm25 (default from config)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only search tools in this category")

	return cmd
}

func runSearch(cmd *cobra.Command, g *Globals, query string, limit int, engine, category string, jsonOutput bool) error {
	switch engine {
	case "", config.EngineRanker, config.EngineBM25:
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", engine, config.EngineRanker, config.EngineBM25)
	}

	svc, err := g.OpenFinder(engine)
	if err != nil {
		return err
	}
	defer svc.Close()

	var results []search.ScoredResult
	if category != "" {
		results = svc.SearchInCategory(query, category, limit)
	} else {
		results = svc.Search(query, limit)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No tools match '%s'.\n", query)
		return nil
	}

	fmt.Fprintf(out, "Results for '%s' (%d):\n\n", query, len(results))
	printResults(out, results, g.Verbose)
	return nil
}

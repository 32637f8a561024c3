package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPopularCmd creates the 'popular' command.
func NewPopularCmd(g *Globals) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List the most popular tools",
		Example: `  toolbelt popular
  toolbelt popular --limit 5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := g.OpenFinder("")
			if err != nil {
				return err
			}
			defer svc.Close()

			results := svc.Popular(limit)
			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, results)
			}

			fmt.Fprintf(out, "Popular tools (%d):\n\n", len(results))
			printResults(out, results, false)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of tools")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRecentCmd creates the 'recent' command.
func NewRecentCmd(g *Globals) *cobra.Command {
	var clearAll bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear recent searches",
		Example: `  toolbelt recent
  toolbelt recent --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := g.OpenFinder("")
			if err != nil {
				return err
			}
			defer svc.Close()

			out := cmd.OutOrStdout()
			if clearAll {
				svc.ClearRecent()
				fmt.Fprintln(out, "✓ Recent searches cleared")
				return nil
			}

			queries := svc.Recent()
			if jsonOutput {
				return writeJSON(out, queries)
			}
			if len(queries) == 0 {
				fmt.Fprintln(out, "No recent searches.")
				return nil
			}

			fmt.Fprintln(out, "Recent searches:")
			for _, q := range queries {
				fmt.Fprintf(out, "  • %s\n", q)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Forget all recent searches")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

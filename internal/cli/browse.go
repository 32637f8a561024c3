package cli

import (
	"fmt"

	"github.com/khanglvm/toolbelt/internal/tui"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the interactive 'browse' command.
func NewBrowseCmd(g *Globals) *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search interactively as you type",
		Long: `Open a search box that re-ranks the catalog as you type.

Results refresh once typing pauses. Use ↑/↓ to move, enter to print the
selected tool's link, and esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.Config()
			if err != nil {
				return err
			}
			svc, err := g.OpenFinder(engine)
			if err != nil {
				return err
			}
			defer svc.Close()

			rec, ok, err := tui.Run(svc, cfg.Settings.SearchLimit, cfg.Settings.Debounce(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", rec.Title, rec.Href)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "e", "", "Ranking engine: ranker or bm25 (default from config)")

	return cmd
}

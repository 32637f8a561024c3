/*
Package cli implements the command-line interface for toolbelt.

Each command is implemented as a separate function that returns a *cobra.Command,
allowing for clean separation and easy testing. Commands share the root's
persistent flags through a *Globals.
*/
package cli

import (
	"github.com/khanglvm/toolbelt/internal/config"
	"github.com/khanglvm/toolbelt/internal/logging"
	"github.com/khanglvm/toolbelt/internal/version"
	"github.com/spf13/cobra"
)

// Execute runs the toolbelt command tree against os.Args.
func Execute() error {
	cmd, g := newRootCmd()
	return executeRoot(cmd, g)
}

// executeRoot runs cmd and releases g whether or not the command fails.
// cobra skips post-run hooks after a RunE error.
func executeRoot(cmd *cobra.Command, g *Globals) error {
	defer g.Close()
	return cmd.Execute()
}

func newRootCmd() (*cobra.Command, *Globals) {
	g := &Globals{}

	cmd := &cobra.Command{
		Use:   "toolbelt",
		Short: "Find and run everyday PDF, image, developer and text tools",
		Long: `toolbelt is a Swiss-army-knife utilities hub.

It ranks a curated catalog of tools against what you type, remembers your
recent searches, and runs the text tools (JSON formatter, Markdown to HTML,
number base and timestamp converters, keyword density, ...) locally.

The same catalog is available to MCP clients through 'toolbelt serve' (MCP).`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			restore, err := logging.Install(g.Verbose)
			if err != nil {
				return err
			}
			g.restoreLogger = restore
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Config file (default $TOOLBELT_CONFIG or ~/.toolbelt.json)")

	cmd.AddCommand(NewSearchCmd(g))
	cmd.AddCommand(NewPopularCmd(g))
	cmd.AddCommand(NewRecentCmd(g))
	cmd.AddCommand(NewToolsCmd(g))
	cmd.AddCommand(NewRunCmd(g))
	cmd.AddCommand(NewBrowseCmd(g))
	cmd.AddCommand(NewServeCmd(g))
	cmd.AddCommand(NewHistoryCmd(g))
	cmd.AddCommand(NewConfigCmd(g))
	cmd.AddCommand(NewVersionCmd())

	return cmd, g
}

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/khanglvm/toolbelt/internal/mcp"
	"github.com/khanglvm/toolbelt/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCmd creates the 'serve' command for running the MCP server.
func NewServeCmd(g *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio transport)",
		Long: `Start the toolbelt MCP server using stdio transport.

This server exposes 4 tools to MCP clients:
  • toolbelt_search  - Rank catalog tools against a query
  • toolbelt_popular - List the most popular tools
  • toolbelt_recent  - List recent searches
  • toolbelt_run     - Run a text tool locally`,
		Example: `  # Run directly
  toolbelt serve

  # Register in an MCP client's server list
  {"toolbelt": {"command": "toolbelt", "args": ["serve"]}}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, g)
		},
	}

	return cmd
}

// runServe serves until stdin closes or SIGINT/SIGTERM arrives.
func runServe(cmd *cobra.Command, g *Globals) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	svc, err := g.OpenFinder("")
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			zap.L().Warn("error during shutdown", zap.Error(err))
		}
	}()

	if cfg.Settings.TrackingEnabled {
		if err := pruneHistory(cfg.Settings.Retention()); err != nil {
			zap.L().Warn("failed to prune search history", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(svc, version.Version)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}()

	select {
	case <-ctx.Done():
		zap.L().Info("shutting down", zap.Error(ctx.Err()))
		return nil
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

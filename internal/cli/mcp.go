package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	alphamcp "github.com/valter-silva-au/cronalpha/internal/mcp"
	"github.com/valter-silva-au/cronalpha/internal/storage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the cronalpha MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cronalpha MCP server on stdio",
	Long: `Start the cronalpha MCP server on stdio transport.

The server exposes two tools: compute_alpha and correlation_matrix. Both
accept either a file path or inline rows. Files are read with the configured
input settings; items named in a request replace the configured input.items.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, err := resolve(cmd, nil)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		srv := alphamcp.NewServer(svc.Calculator, storage.LoadOptionsFromConfig(cfg.Input), appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

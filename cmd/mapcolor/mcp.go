package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapcolor/internal/mcpserver"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol server on stdio",
		Long: `mcp serves the tools solve_coloring and generate_map, and the
mapcolor://palette resource, over stdin/stdout. Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.NewServer(a.cfg, version, a.log, nil)
			a.log.Info("starting MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("mcp: %w", err)
			}

			return nil
		},
	}
}

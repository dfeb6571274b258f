package cmd

import (
	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing wrapped stats over stdio",
	Long: `Start a Model Context Protocol server over stdio.

Exposes a get_wrapped_stats tool so MCP clients can request
year-in-code reports for the authenticated user.

Example:

  gitwrap mcp`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := mcp.StartMCPServer(cmd.Context(), cfg, client); err != nil {
			contract.LogFatal("Error running MCP server", err)
		}
	},
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitwrap MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitHubClient) *server.MCPServer {
	s := server.NewMCPServer(
		"GitHub Wrapped Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	s.AddTool(mcp.NewTool("get_wrapped_stats",
		mcp.WithDescription("Compute a GitHub account's year-in-code summary: work-life balance, commit persona, coding season, dependency profile, and forgotten repository."),
		mcp.WithNumber("year", mcp.Description("Calendar year to analyze (defaults to the configured year).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of dependency entries returned.")),
	), h.handleGetWrappedStats)

	return s
}

// StartMCPServer starts the gitwrap MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitHubClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gitwrap/gitwrap/core"
	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitHubClient
}

func (h *toolHandler) handleGetWrappedStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if y := request.GetInt("year", 0); y > 0 {
		if y < 2008 || y > time.Now().Year() {
			return mcp.NewToolResultError(fmt.Sprintf("invalid year %d", y)), nil
		}
		cfg.Year = y
	}

	stats, err := core.ComputeWrappedStats(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	if l := request.GetInt("limit", 0); l > 0 && l < len(stats.Dependencies) {
		stats.Dependencies = stats.Dependencies[:l]
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

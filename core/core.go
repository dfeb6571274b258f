// Package core implements the aggregation engine that reduces one year of a
// GitHub account's activity to wrapped statistics.
package core

import (
	"context"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/internal/outwriter"
)

// ExecuteWrapped computes the wrapped statistics for the configured year and
// writes them using the configured output format.
func ExecuteWrapped(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) error {
	start := time.Now()

	stats, err := ComputeWrappedStats(ctx, cfg, client)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteWrapped(stats, cfg, time.Since(start))
}

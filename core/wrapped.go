package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
)

// ComputeWrappedStats drives the full aggregation pipeline for one
// account-year and assembles the immutable result record.
//
// Only two failures are fatal: a missing token (checked before any network
// call) and the profile fetch, since without an identity there is nothing
// to aggregate against. Every other failure thins the statistics instead of
// aborting the run.
func ComputeWrappedStats(ctx context.Context, cfg *contract.Config, client contract.GitHubClient) (*schema.WrappedStats, error) {
	if cfg.Token == "" {
		return nil, contract.ErrMissingToken
	}

	profile, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve profile: %w", err)
	}

	start, end := contract.YearWindow(cfg.Year)

	// Raw inputs for the analyzers. Both fail soft.
	records, messages := collectPushActivity(ctx, client, profile.Login, start, end)
	repos, err := client.ListOwnedRepos(ctx, contract.RepoListLimit)
	if err != nil {
		contract.LogWarn("Repository listing failed", err)
		repos = nil
	}

	stats := &schema.WrappedStats{
		Year:         cfg.Year,
		User:         *profile,
		TotalCommits: schema.TotalCommits(records),
	}

	// The four analyzers share no state: each receives a read-only
	// snapshot and writes its own slot of the result, so they run
	// concurrently and completion gates on all of them settling.
	var wg sync.WaitGroup
	wg.Go(func() {
		stats.WorkLifeBalance, stats.CodingSeason = aggregateTemporal(records)
	})
	wg.Go(func() {
		stats.Persona = classifyPersona(messages)
	})
	wg.Go(func() {
		stats.TopDependency, stats.Dependencies, stats.DependencyVariance = profileDependencies(ctx, client, repos)
	})
	wg.Go(func() {
		stats.ForgottenRepo = findForgottenRepo(repos, time.Now())
	})
	wg.Wait()

	return stats, nil
}

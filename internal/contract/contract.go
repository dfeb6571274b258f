// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/gitwrap/gitwrap/schema"
)

// GitHubClient defines the read operations the aggregation engine consumes
// from the hosting platform. This allows the core logic to be tested without
// network access. All operations are idempotent reads carrying the bearer
// credential configured at client construction.
type GitHubClient interface {
	// AuthenticatedUser resolves the profile behind the configured token.
	AuthenticatedUser(ctx context.Context) (*schema.UserProfile, error)

	// ListEvents returns one page of the account's activity feed, newest
	// first. Pages are 1-based.
	ListEvents(ctx context.Context, login string, page, perPage int) ([]schema.Event, error)

	// ListOwnedRepos returns up to limit of the account's owned
	// repositories, sorted by most recently updated.
	ListOwnedRepos(ctx context.Context, limit int) ([]schema.Repository, error)

	// FileContent fetches a named file from a repository by path and
	// returns its decoded content.
	FileContent(ctx context.Context, fullName, path string) (string, error)
}

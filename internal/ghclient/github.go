// Package ghclient implements the GitHub side of the engine's client
// contract over the REST API.
package ghclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
	github "github.com/google/go-github/v61/github"
	"golang.org/x/oauth2"
)

const userAgent = "gitwrap/1.0"

// Client wraps an authenticated go-github client behind the engine contract.
type Client struct {
	gh *github.Client
}

var _ contract.GitHubClient = &Client{} // Compile-time check

// New creates an authenticated GitHub client from a bearer token.
func New(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	client.UserAgent = userAgent
	return &Client{gh: client}
}

// AuthenticatedUser implements the GitHubClient interface.
func (c *Client) AuthenticatedUser(ctx context.Context) (*schema.UserProfile, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch authenticated user: %w", err)
	}
	return &schema.UserProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
	}, nil
}

// ListEvents implements the GitHubClient interface. The feed is returned
// newest first; push payloads are flattened into commit counts and messages.
func (c *Client) ListEvents(ctx context.Context, login string, page, perPage int) ([]schema.Event, error) {
	opts := &github.ListOptions{Page: page, PerPage: perPage}
	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, login, false, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch events page %d: %w", page, err)
	}

	out := make([]schema.Event, 0, len(events))
	for _, ev := range events {
		normalized := schema.Event{
			Type:      ev.GetType(),
			CreatedAt: ev.GetCreatedAt().Time,
		}
		if ev.GetType() == schema.PushEventType {
			// A payload that fails to parse is treated like any other
			// malformed unit: the event keeps a zero commit count.
			if payload, err := ev.ParsePayload(); err == nil {
				if push, ok := payload.(*github.PushEvent); ok {
					normalized.CommitCount = push.GetSize()
					for _, commit := range push.Commits {
						normalized.Messages = append(normalized.Messages, commit.GetMessage())
					}
				}
			}
		}
		out = append(out, normalized)
	}
	return out, nil
}

// ListOwnedRepos implements the GitHubClient interface.
func (c *Client) ListOwnedRepos(ctx context.Context, limit int) ([]schema.Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list owned repositories: %w", err)
	}

	out := make([]schema.Repository, 0, len(repos))
	for _, repo := range repos {
		out = append(out, schema.Repository{
			Name:      repo.GetName(),
			FullName:  repo.GetFullName(),
			CreatedAt: repo.GetCreatedAt().Time,
			UpdatedAt: repo.GetUpdatedAt().Time,
		})
	}
	return out, nil
}

// FileContent implements the GitHubClient interface. The contents API
// returns base64-encoded payloads; decoding is handled by the library.
func (c *Client) FileContent(ctx context.Context, fullName, path string) (string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return "", fmt.Errorf("invalid repository name %q: want owner/repo", fullName)
	}
	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s from %s: %w", path, fullName, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%s in %s is not a file", path, fullName)
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode %s from %s: %w", path, fullName, err)
	}
	return content, nil
}

package contract

import (
	"context"

	"github.com/gitwrap/gitwrap/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitHubClient is a testify mock for the GitHubClient type.
type MockGitHubClient struct {
	mock.Mock
}

var _ GitHubClient = &MockGitHubClient{} // Compile-time check

// AuthenticatedUser implements the GitHubClient interface.
func (m *MockGitHubClient) AuthenticatedUser(ctx context.Context) (*schema.UserProfile, error) {
	ret := m.Called(ctx)
	profile, _ := ret.Get(0).(*schema.UserProfile)
	return profile, ret.Error(1)
}

// ListEvents implements the GitHubClient interface.
func (m *MockGitHubClient) ListEvents(ctx context.Context, login string, page, perPage int) ([]schema.Event, error) {
	ret := m.Called(ctx, login, page, perPage)
	events, _ := ret.Get(0).([]schema.Event)
	return events, ret.Error(1)
}

// ListOwnedRepos implements the GitHubClient interface.
func (m *MockGitHubClient) ListOwnedRepos(ctx context.Context, limit int) ([]schema.Repository, error) {
	ret := m.Called(ctx, limit)
	repos, _ := ret.Get(0).([]schema.Repository)
	return repos, ret.Error(1)
}

// FileContent implements the GitHubClient interface.
func (m *MockGitHubClient) FileContent(ctx context.Context, fullName, path string) (string, error) {
	ret := m.Called(ctx, fullName, path)
	content, _ := ret.Get(0).(string)
	return content, ret.Error(1)
}

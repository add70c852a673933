package app

import (
	"context"
	"fmt"
)

// GithubClient returns data from the github rest api.
type GithubClient interface {
	Organization(ctx context.Context, org string) (Organization, error)
	Repository(ctx context.Context, owner string, name string) (Repository, error)
	User(ctx context.Context, login string) (User, error)
	UserRepositories(ctx context.Context, login string) ([]Repository, error)
	Commits(ctx context.Context, owner string, name string) ([]Commit, error)
	PullRequests(ctx context.Context, owner string, name string) ([]PullRequest, error)
	Issues(ctx context.Context, owner string, name string) ([]Issue, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient) *Service {
	return &Service{
		githubClient: githubClient,
	}
}

// Organization returns organization data by its login name.
func (s *Service) Organization(ctx context.Context, org string) (Organization, error) {
	if org == "" {
		return Organization{}, InvalidRequestError("organization name cannot be empty")
	}

	o, err := s.githubClient.Organization(ctx, org)
	if err != nil {
		return Organization{}, fmt.Errorf("retrieving organization: %w", err)
	}

	return o, nil
}

// Repository returns single repository data by owner login and repository name.
func (s *Service) Repository(ctx context.Context, owner string, name string) (Repository, error) {
	if owner == "" {
		return Repository{}, InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return Repository{}, InvalidRequestError("repository name cannot be empty")
	}

	r, err := s.githubClient.Repository(ctx, owner, name)
	if err != nil {
		return Repository{}, fmt.Errorf("retrieving repository: %w", err)
	}

	return r, nil
}

// User returns user profile data by login name.
func (s *Service) User(ctx context.Context, username string) (User, error) {
	if username == "" {
		return User{}, InvalidRequestError("username cannot be empty")
	}

	u, err := s.githubClient.User(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("retrieving user: %w", err)
	}

	return u, nil
}

// UserRepositories returns all public repositories of given user.
func (s *Service) UserRepositories(ctx context.Context, username string) ([]Repository, error) {
	if username == "" {
		return nil, InvalidRequestError("username cannot be empty")
	}

	rs, err := s.githubClient.UserRepositories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("retrieving user repositories: %w", err)
	}

	return rs, nil
}

// RepositoryCommits returns most recent commits of given repository.
func (s *Service) RepositoryCommits(ctx context.Context, owner string, name string) ([]Commit, error) {
	if owner == "" {
		return nil, InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return nil, InvalidRequestError("repository name cannot be empty")
	}

	cs, err := s.githubClient.Commits(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("retrieving repository commits: %w", err)
	}

	return cs, nil
}

// RepositoryPullRequests returns most recent pull requests of given repository.
func (s *Service) RepositoryPullRequests(ctx context.Context, owner string, name string) ([]PullRequest, error) {
	if owner == "" {
		return nil, InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return nil, InvalidRequestError("repository name cannot be empty")
	}

	prs, err := s.githubClient.PullRequests(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("retrieving repository pull requests: %w", err)
	}

	return prs, nil
}

// RepositoryIssues returns most recent issues of given repository.
// Pull requests returned by github's issues resource are already filtered out.
func (s *Service) RepositoryIssues(ctx context.Context, owner string, name string) ([]Issue, error) {
	if owner == "" {
		return nil, InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return nil, InvalidRequestError("repository name cannot be empty")
	}

	is, err := s.githubClient.Issues(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("retrieving repository issues: %w", err)
	}

	return is, nil
}

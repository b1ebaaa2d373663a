package github

import (
	"context"

	"github.com/yourusername/gitscout/internal/domain"
)

// Repository defines the GitHub data operations the application needs.
type Repository interface {
	// FetchUserDetail fetches the profile of a single user.
	FetchUserDetail(ctx context.Context, username string) (*domain.UserDetail, error)

	// FetchUsers fetches one page of users ordered by ID.
	FetchUsers(ctx context.Context, opts ListUsersOptions) ([]domain.User, error)

	// FetchRepositories fetches repositories owned by username.
	FetchRepositories(ctx context.Context, username string, perPage int) ([]domain.Repository, error)

	// SearchUsers returns the users matching query.
	SearchUsers(ctx context.Context, query string, perPage int) ([]domain.User, error)
}

// ListUsersOptions contains the paging parameters for FetchUsers.
type ListUsersOptions struct {
	PerPage int   // <= 0 selects domain.DefaultPerPage
	Since   int64 // last seen user ID; 0 for the first page
}

// HTTPRepository implements Repository against the GitHub REST API.
type HTTPRepository struct {
	fetcher Fetcher
	baseURL string
}

// RepositoryOption configures an HTTPRepository.
type RepositoryOption func(*HTTPRepository)

// WithBaseURL points the repository at a different API root, such as a
// GitHub Enterprise server or a test server.
func WithBaseURL(baseURL string) RepositoryOption {
	return func(r *HTTPRepository) {
		if baseURL != "" {
			r.baseURL = baseURL
		}
	}
}

// NewHTTPRepository creates a repository that sends requests through fetcher.
func NewHTTPRepository(fetcher Fetcher, opts ...RepositoryOption) *HTTPRepository {
	r := &HTTPRepository{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchUserDetail fetches the profile of username.
func (r *HTTPRepository) FetchUserDetail(ctx context.Context, username string) (*domain.UserDetail, error) {
	u, err := UserDetailEndpoint{Username: username}.URL(r.baseURL)
	if err != nil {
		return nil, err
	}

	detail, err := Fetch[domain.UserDetail](ctx, r.fetcher, u)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// FetchUsers fetches the page of users that follows opts.Since.
func (r *HTTPRepository) FetchUsers(ctx context.Context, opts ListUsersOptions) ([]domain.User, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}

	u, err := UsersListEndpoint{PerPage: perPage, Since: opts.Since}.URL(r.baseURL)
	if err != nil {
		return nil, err
	}
	return Fetch[[]domain.User](ctx, r.fetcher, u)
}

// FetchRepositories fetches up to perPage repositories owned by username.
func (r *HTTPRepository) FetchRepositories(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
	u, err := UserRepositoriesEndpoint{Username: username, PerPage: perPage}.URL(r.baseURL)
	if err != nil {
		return nil, err
	}
	return Fetch[[]domain.Repository](ctx, r.fetcher, u)
}

// SearchUsers searches users by free text and returns the matched items.
func (r *HTTPRepository) SearchUsers(ctx context.Context, query string, perPage int) ([]domain.User, error) {
	u, err := SearchUsersEndpoint{Query: query, PerPage: perPage}.URL(r.baseURL)
	if err != nil {
		return nil, err
	}

	resp, err := Fetch[domain.UserSearchResponse](ctx, r.fetcher, u)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

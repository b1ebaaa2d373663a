package viewmodel

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/domain"
)

// fakeRepository records every call and answers from queued results.
type fakeRepository struct {
	mu sync.Mutex

	usersCalls  []github.ListUsersOptions
	searchCalls []string
	detailCalls []string
	reposCalls  []string

	pages    [][]domain.User // FetchUsers results, consumed in order
	usersErr error

	searchResult []domain.User
	searchErr    error

	detail    *domain.UserDetail
	detailErr error
	repos     []domain.Repository
	reposErr  error
}

var _ github.Repository = (*fakeRepository)(nil)

func (f *fakeRepository) FetchUsers(_ context.Context, opts github.ListUsersOptions) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usersCalls = append(f.usersCalls, opts)
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	if len(f.pages) == 0 {
		return []domain.User{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeRepository) SearchUsers(_ context.Context, query string, _ int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	return f.searchResult, f.searchErr
}

func (f *fakeRepository) FetchUserDetail(_ context.Context, username string) (*domain.UserDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, username)
	return f.detail, f.detailErr
}

func (f *fakeRepository) FetchRepositories(_ context.Context, username string, _ int) ([]domain.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reposCalls = append(f.reposCalls, username)
	return f.repos, f.reposErr
}

func (f *fakeRepository) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.usersCalls) + len(f.searchCalls) + len(f.detailCalls) + len(f.reposCalls)
}

// updater is implemented by both view-models.
type updater interface {
	Update(msg tea.Msg) bool
}

// run executes cmd synchronously the way the bubbletea runtime would and
// feeds its message back into vm.
func run(t *testing.T, vm updater, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.True(t, vm.Update(cmd()))
}

func users(ids ...int64) []domain.User {
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.User{ID: id, Login: fmt.Sprintf("user%d", id)})
	}
	return out
}

package viewmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gitscout/internal/domain"
)

func octocat() *domain.UserDetail {
	name := "The Octocat"
	return &domain.UserDetail{Login: "octocat", Name: &name, Followers: 10, Following: 2}
}

func TestUserDetail_Loads(t *testing.T) {
	repos := []domain.Repository{{ID: 1, Name: "Hello-World", StarsCount: 80}}
	repo := &fakeRepository{detail: octocat(), repos: repos}
	vm := NewUserDetail(UserDetailConfig{Repository: repo, Username: "octocat"})

	var transitions []domain.DetailState
	vm.OnStateChanged(func(s domain.DetailState) { transitions = append(transitions, s) })

	run(t, vm, vm.ViewDidLoad())

	assert.Equal(t, []domain.DetailState{
		domain.DetailLoading{},
		domain.DetailLoaded{Detail: *octocat(), Repositories: repos},
	}, transitions)
	assert.Equal(t, []string{"octocat"}, repo.detailCalls)
	assert.Equal(t, []string{"octocat"}, repo.reposCalls)
}

func TestUserDetail_DetailFailure(t *testing.T) {
	repo := &fakeRepository{detailErr: errors.New("boom"), repos: []domain.Repository{{ID: 1}}}
	vm := NewUserDetail(UserDetailConfig{
		Repository: repo,
		Username:   "ghost",
		Localize:   func(key string) string { return "localized:" + key },
	})

	run(t, vm, vm.ViewDidLoad())

	assert.Equal(t, domain.DetailError{Message: "localized:error.failed.user.info"}, vm.State())
}

func TestUserDetail_RepositoriesFailureKeepsProfile(t *testing.T) {
	repo := &fakeRepository{detail: octocat(), reposErr: errors.New("rate limited")}
	vm := NewUserDetail(UserDetailConfig{Repository: repo, Username: "octocat"})

	run(t, vm, vm.ViewDidLoad())

	state, ok := vm.State().(domain.DetailLoaded)
	require.True(t, ok)
	assert.Equal(t, "The Octocat", state.Detail.DisplayName())
	assert.NotNil(t, state.Repositories)
	assert.Empty(t, state.Repositories)
}

func TestUserDetail_RefreshDiscardsStaleLoad(t *testing.T) {
	repo := &fakeRepository{detail: octocat()}
	vm := NewUserDetail(UserDetailConfig{Repository: repo, Username: "octocat"})

	stale := vm.ViewDidLoad()
	fresh := vm.Refresh()

	repo.detail = &domain.UserDetail{Login: "octocat", Followers: 99}
	run(t, vm, fresh)
	repo.detail = &domain.UserDetail{Login: "octocat", Followers: 1}
	assert.True(t, vm.Update(stale()))

	state, ok := vm.State().(domain.DetailLoaded)
	require.True(t, ok)
	assert.Equal(t, 99, state.Detail.Followers)
}

func TestUserDetail_UpdateIgnoresOtherMessages(t *testing.T) {
	repo := &fakeRepository{detail: octocat()}
	vm := NewUserDetail(UserDetailConfig{Repository: repo, Username: "octocat"})
	other := NewUserDetail(UserDetailConfig{Repository: repo, Username: "octocat"})

	assert.False(t, vm.Update(other.ViewDidLoad()()))
	assert.False(t, vm.Update(UsersListMsg{}))
	assert.Equal(t, "octocat", vm.Username())
}

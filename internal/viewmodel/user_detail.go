package viewmodel

import (
	"context"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/adapter/i18n"
	"github.com/yourusername/gitscout/internal/domain"
)

// UserDetailMsg carries a loaded profile back to the UI loop.
type UserDetailMsg struct {
	vm           *UserDetail
	generation   uint64
	detail       *domain.UserDetail
	repositories []domain.Repository
	err          error
	reposErr     error
}

// UserDetailConfig contains the dependencies of a UserDetail.
type UserDetailConfig struct {
	Repository   github.Repository
	Username     string
	ReposPerPage int // <= 0 selects domain.DefaultPerPage
	Localize     func(key string) string
	Logger       *slog.Logger
}

// UserDetail loads one user's profile together with their repositories.
type UserDetail struct {
	repo         github.Repository
	username     string
	reposPerPage int
	localize     func(string) string
	logger       *slog.Logger

	state      domain.DetailState
	generation uint64
	cancel     context.CancelFunc

	onStateChanged func(domain.DetailState)
}

// NewUserDetail creates a UserDetail in the Loading state.
func NewUserDetail(cfg UserDetailConfig) *UserDetail {
	perPage := cfg.ReposPerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	localize := cfg.Localize
	if localize == nil {
		localize = func(key string) string { return key }
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &UserDetail{
		repo:         cfg.Repository,
		username:     cfg.Username,
		reposPerPage: perPage,
		localize:     localize,
		logger:       logger.With(slog.String("component", "user_detail"), slog.String("username", cfg.Username)),
		state:        domain.DetailLoading{},
	}
}

// OnStateChanged registers fn to receive every state transition, replacing
// any previous observer.
func (vm *UserDetail) OnStateChanged(fn func(domain.DetailState)) {
	vm.onStateChanged = fn
}

// State returns the current state.
func (vm *UserDetail) State() domain.DetailState {
	return vm.state
}

// Username returns the login whose profile is shown.
func (vm *UserDetail) Username() string {
	return vm.username
}

// ViewDidLoad fetches the profile and repositories.
func (vm *UserDetail) ViewDidLoad() tea.Cmd {
	return vm.load()
}

// Refresh fetches the profile and repositories again, dropping any request
// still in flight.
func (vm *UserDetail) Refresh() tea.Cmd {
	return vm.load()
}

// Update applies a load result. It reports whether msg belonged to vm.
func (vm *UserDetail) Update(msg tea.Msg) bool {
	m, ok := msg.(UserDetailMsg)
	if !ok || m.vm != vm {
		return false
	}
	if m.generation != vm.generation {
		return true
	}

	if m.err != nil {
		vm.logger.Error("fetch user detail failed", slog.Any("error", m.err))
		vm.setState(domain.DetailError{Message: vm.localize(i18n.KeyFailedUserInfo)})
		return true
	}

	repos := slices.Clone(m.repositories)
	if m.reposErr != nil {
		vm.logger.Warn("fetch repositories failed", slog.Any("error", m.reposErr))
		repos = []domain.Repository{}
	}
	vm.setState(domain.DetailLoaded{Detail: *m.detail, Repositories: repos})
	return true
}

// Close cancels any request in flight.
func (vm *UserDetail) Close() {
	vm.generation++
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
}

func (vm *UserDetail) load() tea.Cmd {
	vm.Close()
	ctx, cancel := context.WithCancel(context.Background())
	vm.cancel = cancel
	generation := vm.generation
	vm.setState(domain.DetailLoading{})

	repo, username, perPage := vm.repo, vm.username, vm.reposPerPage
	return func() tea.Msg {
		msg := UserDetailMsg{vm: vm, generation: generation}

		// A failed profile fetch cancels the repositories request; a failed
		// repositories fetch leaves the profile alone.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			detail, err := repo.FetchUserDetail(gctx, username)
			msg.detail = detail
			return err
		})
		g.Go(func() error {
			msg.repositories, msg.reposErr = repo.FetchRepositories(gctx, username, perPage)
			return nil
		})
		msg.err = g.Wait()
		return msg
	}
}

func (vm *UserDetail) setState(state domain.DetailState) {
	vm.state = state
	if vm.onStateChanged != nil {
		vm.onStateChanged(state)
	}
}

package viewmodel

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/adapter/i18n"
	"github.com/yourusername/gitscout/internal/domain"
)

type usersOp int

const (
	opFirstPage usersOp = iota
	opNextPage
	opSearch
)

func (o usersOp) String() string {
	switch o {
	case opFirstPage:
		return "first page"
	case opNextPage:
		return "next page"
	case opSearch:
		return "search"
	default:
		return "unknown"
	}
}

// UsersListMsg carries the result of a users list fetch back to the UI loop.
type UsersListMsg struct {
	list       *UsersList
	generation uint64
	op         usersOp
	users      []domain.User
	err        error
}

// UsersListConfig contains the dependencies of a UsersList.
type UsersListConfig struct {
	Repository github.Repository
	PerPage    int                     // <= 0 selects domain.DefaultPerPage
	Localize   func(key string) string // nil returns keys unchanged
	Logger     *slog.Logger            // nil discards
}

// UsersList holds the paginated, searchable users list.
//
// Commands return a tea.Cmd that performs the fetch off the UI loop, or nil
// when the command does nothing. The result comes back as a UsersListMsg that
// must be passed to Update. All state lives on the UI loop: commands and
// Update are called from there only.
type UsersList struct {
	repo     github.Repository
	perPage  int
	localize func(string) string
	logger   *slog.Logger

	state domain.ListState
	users []domain.User

	// generation identifies the latest primary request. Completions from an
	// older generation are dropped.
	generation    uint64
	cancelPrimary context.CancelFunc
	cancelMore    context.CancelFunc
	loadingMore   bool

	searching bool
	snapshot  []domain.User
	hasSnap   bool

	onStateChanged func(domain.ListState)
}

// NewUsersList creates a UsersList in the Loading state.
func NewUsersList(cfg UsersListConfig) *UsersList {
	perPage := cfg.PerPage
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

	return &UsersList{
		repo:     cfg.Repository,
		perPage:  perPage,
		localize: localize,
		logger:   logger.With(slog.String("component", "users_list")),
		state:    domain.ListLoading{},
	}
}

// OnStateChanged registers fn to receive every state transition. Only one
// observer is kept; registering replaces the previous one.
func (vm *UsersList) OnStateChanged(fn func(domain.ListState)) {
	vm.onStateChanged = fn
}

// State returns the current state.
func (vm *UsersList) State() domain.ListState {
	return vm.state
}

// Searching reports whether search results are being shown.
func (vm *UsersList) Searching() bool {
	return vm.searching
}

// ViewDidLoad fetches the first page.
func (vm *UsersList) ViewDidLoad() tea.Cmd {
	return vm.fetchFirstPage()
}

// Refresh drops the accumulated list and any search, then fetches the first
// page again.
func (vm *UsersList) Refresh() tea.Cmd {
	vm.users = nil
	vm.searching = false
	vm.snapshot = nil
	vm.hasSnap = false
	return vm.fetchFirstPage()
}

// LoadMore fetches the page after the last accumulated user. It does nothing
// while a page is already loading, while searching, when the list is empty or
// when the list is not in a loaded state.
func (vm *UsersList) LoadMore() tea.Cmd {
	if vm.loadingMore || vm.searching {
		return nil
	}
	switch vm.state.(type) {
	case domain.ListLoaded, domain.ListLoadedMore:
	default:
		return nil
	}
	since, ok := domain.LastUserID(vm.users)
	if !ok {
		return nil
	}

	vm.loadingMore = true
	ctx, cancel := context.WithCancel(context.Background())
	vm.cancelMore = cancel
	generation := vm.generation
	vm.setState(domain.ListLoadingMore{})

	repo, perPage := vm.repo, vm.perPage
	return func() tea.Msg {
		users, err := repo.FetchUsers(ctx, github.ListUsersOptions{PerPage: perPage, Since: since})
		return UsersListMsg{list: vm, generation: generation, op: opNextPage, users: users, err: err}
	}
}

// Search replaces the list with the users matching query. Blank queries are
// ignored. The list shown when search mode starts is kept so CancelSearch can
// restore it.
func (vm *UsersList) Search(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if !vm.searching {
		if users, ok := domain.UsersOf(vm.state); ok {
			vm.snapshot = slices.Clone(users)
			vm.hasSnap = true
		}
		vm.searching = true
	}

	ctx, generation := vm.beginPrimary()
	vm.setState(domain.ListLoading{})

	repo, perPage := vm.repo, vm.perPage
	return func() tea.Msg {
		users, err := repo.SearchUsers(ctx, query, perPage)
		return UsersListMsg{list: vm, generation: generation, op: opSearch, users: users, err: err}
	}
}

// CancelSearch leaves search mode and shows the list saved when the search
// began, without fetching it again. When search began before any list had
// loaded, the first page is fetched instead.
func (vm *UsersList) CancelSearch() tea.Cmd {
	if !vm.searching && !vm.hasSnap {
		return nil
	}

	vm.searching = false
	if !vm.hasSnap {
		return vm.fetchFirstPage()
	}

	vm.invalidate()
	vm.users = vm.snapshot
	vm.snapshot = nil
	vm.hasSnap = false
	vm.setState(domain.ListLoaded{Users: slices.Clone(vm.users)})
	return nil
}

// Update applies a fetch result. It reports whether msg belonged to vm.
func (vm *UsersList) Update(msg tea.Msg) bool {
	m, ok := msg.(UsersListMsg)
	if !ok || m.list != vm {
		return false
	}

	if m.op == opNextPage && m.generation == vm.generation {
		vm.loadingMore = false
	}
	if m.generation != vm.generation {
		vm.logger.Debug("discarding stale result",
			slog.String("op", m.op.String()),
			slog.Uint64("generation", m.generation),
			slog.Uint64("current", vm.generation),
		)
		return true
	}

	if m.err != nil {
		key := i18n.KeyFailedFetchUsers
		if m.op == opSearch {
			key = i18n.KeyFailedSearch
		}
		vm.logger.Error("fetch failed", slog.String("op", m.op.String()), slog.Any("error", m.err))
		vm.setState(domain.ListError{Message: vm.localize(key)})
		return true
	}

	switch m.op {
	case opFirstPage:
		vm.users = slices.Clone(m.users)
		vm.setState(domain.ListLoaded{Users: slices.Clone(vm.users)})
	case opNextPage:
		vm.users = append(slices.Clone(vm.users), m.users...)
		vm.setState(domain.ListLoadedMore{Users: slices.Clone(vm.users)})
	case opSearch:
		vm.setState(domain.ListLoaded{Users: slices.Clone(m.users)})
	}
	return true
}

// Close cancels any request in flight.
func (vm *UsersList) Close() {
	vm.invalidate()
}

func (vm *UsersList) fetchFirstPage() tea.Cmd {
	ctx, generation := vm.beginPrimary()
	vm.setState(domain.ListLoading{})

	repo, perPage := vm.repo, vm.perPage
	return func() tea.Msg {
		users, err := repo.FetchUsers(ctx, github.ListUsersOptions{PerPage: perPage, Since: 0})
		return UsersListMsg{list: vm, generation: generation, op: opFirstPage, users: users, err: err}
	}
}

// beginPrimary starts a new generation and returns the context for its
// request.
func (vm *UsersList) beginPrimary() (context.Context, uint64) {
	vm.invalidate()

	ctx, cancel := context.WithCancel(context.Background())
	vm.cancelPrimary = cancel
	return ctx, vm.generation
}

// invalidate starts a new generation, cancelling every request in flight.
func (vm *UsersList) invalidate() {
	vm.generation++
	if vm.cancelPrimary != nil {
		vm.cancelPrimary()
		vm.cancelPrimary = nil
	}
	if vm.cancelMore != nil {
		vm.cancelMore()
		vm.cancelMore = nil
	}
	vm.loadingMore = false
}

func (vm *UsersList) setState(state domain.ListState) {
	vm.state = state
	if vm.onStateChanged != nil {
		vm.onStateChanged(state)
	}
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/domain"
	"github.com/yourusername/gitscout/internal/viewmodel"
)

// stubRepository serves fixed pages and records the paging cursors it saw.
type stubRepository struct {
	mu      sync.Mutex
	pages   [][]domain.User
	since   []int64
	queries []string
	results []domain.User
	detail  domain.UserDetail
	repos   []domain.Repository

	// ctxErrs records ctx.Err() as seen by each fetch.
	ctxErrs []error
}

func (s *stubRepository) FetchUsers(ctx context.Context, opts github.ListUsersOptions) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.since = append(s.since, opts.Since)
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	if len(s.pages) == 0 {
		return []domain.User{}, nil
	}
	page := s.pages[0]
	s.pages = s.pages[1:]
	return page, nil
}

func (s *stubRepository) SearchUsers(_ context.Context, query string, _ int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.results, nil
}

func (s *stubRepository) FetchUserDetail(ctx context.Context, username string) (*domain.UserDetail, error) {
	s.mu.Lock()
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	s.mu.Unlock()
	detail := s.detail
	detail.Login = username
	return &detail, nil
}

func (s *stubRepository) FetchRepositories(context.Context, string, int) ([]domain.Repository, error) {
	return s.repos, nil
}

type stubOpener struct {
	opened []string
}

func (o *stubOpener) Open(_ context.Context, rawURL string) error {
	o.opened = append(o.opened, rawURL)
	return nil
}

func makeUsers(from, to int64) []domain.User {
	var out []domain.User
	for id := from; id <= to; id++ {
		out = append(out, domain.User{ID: id, Login: fmt.Sprintf("user%d", id)})
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds the resulting messages back into m, the way the
// bubbletea runtime would. Timer-driven messages (spinner ticks, cursor
// blinks) are not followed so the test never sleeps.
func drain(t *testing.T, m *AppModel, cmd tea.Cmd) {
	t.Helper()
	for depth := 0; cmd != nil && depth < 10; depth++ {
		msg := cmd()
		cmd = nil

		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				drain(t, m, c)
			}
		case viewmodel.UsersListMsg, viewmodel.UserDetailMsg, OpenUserMsg, OpenURLMsg, BackMsg, browserOpenedMsg:
			_, cmd = m.Update(msg)
		}
	}
}

func press(t *testing.T, m *AppModel, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(key(k))
		drain(t, m, cmd)
	}
}

func newTestApp(t *testing.T, repo *stubRepository) (*AppModel, *stubOpener) {
	t.Helper()
	opener := &stubOpener{}
	m := NewAppModel(AppDeps{Repository: repo, Opener: opener, Version: "test"})
	drain(t, m, m.Init())
	return m, opener
}

func TestAppModel_LoadsFirstPage(t *testing.T) {
	repo := &stubRepository{pages: [][]domain.User{makeUsers(1, 3)}}
	m, _ := newTestApp(t, repo)

	view := m.View()
	for _, login := range []string{"user1", "user2", "user3"} {
		if !strings.Contains(view, login) {
			t.Errorf("view missing %s:\n%s", login, view)
		}
	}
}

func TestAppModel_ScrollingToLastRowLoadsMore(t *testing.T) {
	repo := &stubRepository{pages: [][]domain.User{makeUsers(1, 3), makeUsers(4, 5)}}
	m, _ := newTestApp(t, repo)

	press(t, m, "j", "j")

	if got := len(repo.since); got != 2 {
		t.Fatalf("expected 2 fetches, got %d", got)
	}
	if repo.since[1] != 3 {
		t.Errorf("expected since=3, got %d", repo.since[1])
	}
	if !strings.Contains(m.View(), "user5") {
		t.Errorf("expected next page in view:\n%s", m.View())
	}
}

func TestAppModel_SearchAndCancel(t *testing.T) {
	repo := &stubRepository{
		pages:   [][]domain.User{makeUsers(1, 2)},
		results: []domain.User{{ID: 583231, Login: "octocat"}},
	}
	m, _ := newTestApp(t, repo)

	// The focus command only drives cursor blinking, so it is not run.
	m.Update(key("/"))
	if !m.usersList.SearchFocused() {
		t.Fatal("expected search box to be focused")
	}

	// q types into the search box instead of quitting.
	m.Update(key("q"))
	if got := m.usersList.search.Value(); got != "q" {
		t.Fatalf("expected q in search box, got %q", got)
	}
	m.usersList.search.SetValue("octo")

	press(t, m, "enter")

	if len(repo.queries) != 1 || repo.queries[0] != "octo" {
		t.Fatalf("unexpected queries: %v", repo.queries)
	}
	if !strings.Contains(m.View(), "octocat") {
		t.Errorf("expected search results in view:\n%s", m.View())
	}

	press(t, m, "esc")

	view := m.View()
	if strings.Contains(view, "octocat") || !strings.Contains(view, "user2") {
		t.Errorf("expected original list after cancel:\n%s", view)
	}
	if len(repo.since) != 1 {
		t.Errorf("cancel must not refetch, got %d fetches", len(repo.since))
	}
}

func TestAppModel_OpenUserAndRepository(t *testing.T) {
	name := "The Octocat"
	repo := &stubRepository{
		pages:  [][]domain.User{{{ID: 1, Login: "octocat"}}},
		detail: domain.UserDetail{Name: &name, Followers: 42, Following: 7},
		repos: []domain.Repository{
			{ID: 1, Name: "Hello-World", StarsCount: 80, HTMLURL: "https://github.com/octocat/Hello-World"},
			{ID: 2, Name: "Spoon-Knife", StarsCount: 20, HTMLURL: "https://github.com/octocat/Spoon-Knife"},
		},
	}
	m, opener := newTestApp(t, repo)

	press(t, m, "enter")

	if m.State() != StateUserDetail {
		t.Fatalf("expected detail state, got %v", m.State())
	}
	view := m.View()
	for _, want := range []string{"The Octocat", "42", "Hello-World", "★ 100"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}

	press(t, m, "enter")
	if len(opener.opened) != 1 || opener.opened[0] != "https://github.com/octocat/Hello-World" {
		t.Errorf("unexpected opened urls: %v", opener.opened)
	}

	press(t, m, "esc")
	if m.State() != StateUsersList {
		t.Errorf("expected list state after esc, got %v", m.State())
	}
}

func TestAppModel_Quit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}

	for _, k := range tests {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestApp(t, &stubRepository{})

			_, cmd := m.Update(key(k))
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestAppModel_QuitCancelsFetchesInFlight(t *testing.T) {
	t.Run("users list", func(t *testing.T) {
		repo := &stubRepository{pages: [][]domain.User{makeUsers(1, 3), makeUsers(4, 5)}}
		m, _ := newTestApp(t, repo)

		_, loadMore := m.Update(key("G"))
		if loadMore == nil {
			t.Fatal("expected a load more command")
		}
		m.Update(key("q"))
		loadMore()

		if got := repo.ctxErrs[len(repo.ctxErrs)-1]; !errors.Is(got, context.Canceled) {
			t.Errorf("expected load more to see a canceled context, got %v", got)
		}
	})

	t.Run("user detail", func(t *testing.T) {
		repo := &stubRepository{pages: [][]domain.User{{{ID: 1, Login: "octocat"}}}}
		m, _ := newTestApp(t, repo)
		press(t, m, "enter")

		_, refresh := m.Update(key("r"))
		if refresh == nil {
			t.Fatal("expected a refresh command")
		}
		m.Update(key("ctrl+c"))
		refresh()

		if got := repo.ctxErrs[len(repo.ctxErrs)-1]; !errors.Is(got, context.Canceled) {
			t.Errorf("expected refresh to see a canceled context, got %v", got)
		}
	})
}

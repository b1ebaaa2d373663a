package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitscout/internal/adapter/github"
	"github.com/yourusername/gitscout/internal/domain"
	"github.com/yourusername/gitscout/internal/viewmodel"
)

// URLOpener opens web pages outside the terminal.
type URLOpener interface {
	Open(ctx context.Context, rawURL string) error
}

// AppState represents the screen currently shown
type AppState int

const (
	StateUsersList AppState = iota
	StateUserDetail
)

// AppModel is the root model: it owns the users list and pushes a detail
// screen on top of it when a user is opened.
type AppModel struct {
	state AppState

	// Child views
	usersList  *UsersListView
	userDetail *UserDetailView

	// Dependencies
	repo     github.Repository
	opener   URLOpener
	cfg      *domain.Config
	localize func(string) string
	logger   *slog.Logger

	// App info
	version string

	// Window dimensions
	windowWidth  int
	windowHeight int

	// statusMessage is shown under the active screen until the next key press.
	statusMessage string
}

// AppDeps contains what the application needs to run.
type AppDeps struct {
	Repository github.Repository
	Opener     URLOpener
	Config     *domain.Config
	Localize   func(string) string
	Logger     *slog.Logger
	Version    string
}

// browserOpenedMsg reports the outcome of opening a repository page.
type browserOpenedMsg struct {
	url string
	err error
}

// NewAppModel creates a new root application model
func NewAppModel(deps AppDeps) *AppModel {
	cfg := deps.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	localize := deps.Localize
	if localize == nil {
		localize = func(key string) string { return key }
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	list := viewmodel.NewUsersList(viewmodel.UsersListConfig{
		Repository: deps.Repository,
		PerPage:    cfg.GitHub.UsersPerPage,
		Localize:   localize,
		Logger:     logger,
	})

	return &AppModel{
		state:        StateUsersList,
		usersList:    NewUsersListView(list, localize),
		repo:         deps.Repository,
		opener:       deps.Opener,
		cfg:          cfg,
		localize:     localize,
		logger:       logger,
		version:      deps.Version,
		windowWidth:  80,
		windowHeight: 30,
	}
}

// State returns the screen currently shown.
func (m *AppModel) State() AppState {
	return m.state
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return m.usersList.Init()
}

// Update handles messages and updates the application state
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		var cmds []tea.Cmd
		var cmd tea.Cmd
		_, cmd = m.usersList.Update(msg)
		cmds = append(cmds, cmd)
		if m.userDetail != nil {
			_, cmd = m.userDetail.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		m.statusMessage = ""

		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.state == StateUsersList && !m.usersList.SearchFocused() && msg.String() == "q" {
			return m, m.quit()
		}

		// Keys go to the visible screen only.
		var cmd tea.Cmd
		if m.state == StateUserDetail && m.userDetail != nil {
			_, cmd = m.userDetail.Update(msg)
		} else {
			_, cmd = m.usersList.Update(msg)
		}
		return m, cmd

	case OpenUserMsg:
		detail := viewmodel.NewUserDetail(viewmodel.UserDetailConfig{
			Repository:   m.repo,
			Username:     msg.Login,
			ReposPerPage: m.cfg.GitHub.ReposPerPage,
			Localize:     m.localize,
			Logger:       m.logger,
		})
		if m.userDetail != nil {
			m.userDetail.Close()
		}
		m.userDetail = NewUserDetailView(detail, m.localize, m.windowWidth, m.windowHeight)
		m.state = StateUserDetail
		return m, m.userDetail.Init()

	case BackMsg:
		if m.userDetail != nil {
			m.userDetail.Close()
			m.userDetail = nil
		}
		m.state = StateUsersList
		return m, nil

	case OpenURLMsg:
		if m.opener == nil {
			return m, nil
		}
		opener, url := m.opener, msg.URL
		return m, func() tea.Msg {
			return browserOpenedMsg{url: url, err: opener.Open(context.Background(), url)}
		}

	case browserOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("open browser failed", slog.String("url", msg.url), slog.Any("error", msg.err))
			m.statusMessage = fmt.Sprintf("Could not open %s: %v", msg.url, msg.err)
		}
		return m, nil
	}

	// Everything else (fetch results, spinner ticks) may belong to either
	// screen.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	_, cmd = m.usersList.Update(msg)
	cmds = append(cmds, cmd)
	if m.userDetail != nil {
		_, cmd = m.userDetail.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// quit cancels every request in flight and stops the program.
func (m *AppModel) quit() tea.Cmd {
	m.usersList.Close()
	if m.userDetail != nil {
		m.userDetail.Close()
	}
	return tea.Quit
}

// View renders the current screen
func (m *AppModel) View() string {
	var content strings.Builder

	if m.state == StateUserDetail && m.userDetail != nil {
		content.WriteString(m.userDetail.View())
	} else {
		content.WriteString(m.usersList.View())
	}

	if m.statusMessage != "" {
		content.WriteString("\n")
		content.WriteString(GetGlobalThemeManager().GetStyles().ErrorBanner.Render(m.statusMessage))
	}
	if m.version != "" {
		content.WriteString("\n")
		content.WriteString(FormatLabel("gitscout " + m.version))
	}

	return content.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitscout/internal/adapter/i18n"
	"github.com/yourusername/gitscout/internal/domain"
	"github.com/yourusername/gitscout/internal/ui/layout"
	"github.com/yourusername/gitscout/internal/viewmodel"
)

// OpenURLMsg asks the app to open URL in the browser.
type OpenURLMsg struct {
	URL string
}

// BackMsg asks the app to leave the current screen.
type BackMsg struct{}

// UserDetailView renders a UserDetail: profile stats and repositories.
type UserDetailView struct {
	vm       *viewmodel.UserDetail
	localize func(string) string

	spinner  spinner.Model
	viewport viewport.Model

	repositories  []domain.Repository
	selectedIndex int

	windowWidth  int
	windowHeight int
}

// NewUserDetailView creates the detail screen for vm.
func NewUserDetailView(vm *viewmodel.UserDetail, localize func(string) string, width, height int) *UserDetailView {
	if localize == nil {
		localize = func(key string) string { return key }
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = GetGlobalThemeManager().GetStyles().Loading

	v := &UserDetailView{
		vm:           vm,
		localize:     localize,
		spinner:      sp,
		viewport:     viewport.New(layout.ContentWidth(width), layout.CalculateRepositoriesHeight(height)),
		windowWidth:  width,
		windowHeight: height,
	}
	vm.OnStateChanged(v.onStateChanged)
	return v
}

// Init starts loading the profile.
func (v *UserDetailView) Init() tea.Cmd {
	return tea.Batch(v.vm.ViewDidLoad(), v.spinner.Tick)
}

// Close cancels loads still in flight.
func (v *UserDetailView) Close() {
	v.vm.Close()
}

// SelectedRepository returns the highlighted repository, if any.
func (v *UserDetailView) SelectedRepository() (domain.Repository, bool) {
	if v.selectedIndex < 0 || v.selectedIndex >= len(v.repositories) {
		return domain.Repository{}, false
	}
	return v.repositories[v.selectedIndex], true
}

// Update handles messages.
func (v *UserDetailView) Update(msg tea.Msg) (*UserDetailView, tea.Cmd) {
	if v.vm.Update(msg) {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.windowWidth = msg.Width
		v.windowHeight = msg.Height
		v.viewport.Width = layout.ContentWidth(msg.Width)
		v.viewport.Height = layout.CalculateRepositoriesHeight(msg.Height)
		v.refreshContent()
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selectedIndex > 0 {
				v.selectedIndex--
				v.refreshContent()
			}
		case "down", "j":
			if v.selectedIndex < len(v.repositories)-1 {
				v.selectedIndex++
				v.refreshContent()
			}
		case "enter", "o":
			if repo, ok := v.SelectedRepository(); ok && repo.HTMLURL != "" {
				return v, func() tea.Msg { return OpenURLMsg{URL: repo.HTMLURL} }
			}
		case "r":
			return v, v.vm.Refresh()
		case "esc", "backspace", "h", "left":
			return v, func() tea.Msg { return BackMsg{} }
		}
	}

	return v, nil
}

func (v *UserDetailView) onStateChanged(state domain.DetailState) {
	if loaded, ok := state.(domain.DetailLoaded); ok {
		v.repositories = loaded.Repositories
	} else {
		v.repositories = nil
	}
	v.selectedIndex = 0
	v.viewport.GotoTop()
	v.refreshContent()
}

func (v *UserDetailView) refreshContent() {
	styles := GetGlobalThemeManager().GetStyles()

	if len(v.repositories) == 0 {
		v.viewport.SetContent(styles.Empty.Render(v.localize(i18n.KeyEmptyRepositories)))
		return
	}

	// Each repository may take two lines, so track the selected row's line.
	var lines []string
	selectedLine := 0
	for i, repo := range v.repositories {
		row := FormatRepository(repo, "-")
		if i == v.selectedIndex {
			selectedLine = len(lines)
			row = styles.RowCursor.Render("▸ ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, strings.Split(row, "\n")...)
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))

	if selectedLine < v.viewport.YOffset {
		v.viewport.SetYOffset(selectedLine)
	} else if selectedLine >= v.viewport.YOffset+v.viewport.Height {
		v.viewport.SetYOffset(selectedLine - v.viewport.Height + 1)
	}
}

// View renders the detail screen.
func (v *UserDetailView) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var content strings.Builder

	switch s := v.vm.State().(type) {
	case domain.DetailLoading:
		content.WriteString(styles.Header.Render("@" + v.vm.Username()))
		content.WriteString("\n\n")
		content.WriteString(fmt.Sprintf("%s %s", v.spinner.View(), styles.Loading.Render(v.localize(i18n.KeyLoading))))

	case domain.DetailError:
		content.WriteString(styles.Header.Render("@" + v.vm.Username()))
		content.WriteString("\n\n")
		content.WriteString(styles.ErrorBanner.Render(s.Message))
		content.WriteString("\n")
		content.WriteString(styles.ShortcutKey.Render("r") + " " + styles.ShortcutDesc.Render(v.localize(i18n.KeyRetry)))

	case domain.DetailLoaded:
		header := styles.Header.Render(s.Detail.DisplayName())
		if s.Detail.DisplayName() != s.Detail.Login {
			header += " " + styles.RowMeta.Render("@"+s.Detail.Login)
		}
		content.WriteString(header)
		content.WriteString("\n\n")
		content.WriteString(FormatStats(s.Detail, v.localize(i18n.KeyFollowers), v.localize(i18n.KeyFollowing)))
		content.WriteString("   ")
		content.WriteString(FormatTotalStars(s.Repositories, v.localize(i18n.KeyStars)))
		content.WriteString("\n")
		content.WriteString(styles.SectionTitle.Render(fmt.Sprintf("%s (%d)", v.localize(i18n.KeyRepositories), len(s.Repositories))))
		content.WriteString("\n")
		content.WriteString(v.viewport.View())
	}
	content.WriteString("\n")

	content.WriteString(GetGlobalThemeManager().RenderShortcuts(
		[2]string{"↑/↓", "navigate"},
		[2]string{"enter", "open in browser"},
		[2]string{"r", "refresh"},
		[2]string{"esc", "back"},
	))
	return content.String()
}

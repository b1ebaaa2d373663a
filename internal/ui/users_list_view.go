package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitscout/internal/adapter/i18n"
	"github.com/yourusername/gitscout/internal/domain"
	"github.com/yourusername/gitscout/internal/ui/layout"
	"github.com/yourusername/gitscout/internal/viewmodel"
)

// OpenUserMsg asks the app to show the detail screen for Login.
type OpenUserMsg struct {
	Login string
}

// UsersListView renders a UsersList and turns key presses into its commands.
type UsersListView struct {
	vm       *viewmodel.UsersList
	localize func(string) string

	search   textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// users is the last loaded list; it stays visible while the next page
	// loads.
	users         []domain.User
	selectedIndex int
	lastQuery     string

	windowWidth  int
	windowHeight int
}

// NewUsersListView creates the users list screen for vm.
func NewUsersListView(vm *viewmodel.UsersList, localize func(string) string) *UsersListView {
	if localize == nil {
		localize = func(key string) string { return key }
	}

	search := textinput.New()
	search.Placeholder = localize(i18n.KeySearchPlaceholder)
	search.Prompt = "/ "
	search.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = GetGlobalThemeManager().GetStyles().Loading

	v := &UsersListView{
		vm:           vm,
		localize:     localize,
		search:       search,
		spinner:      sp,
		viewport:     viewport.New(80, layout.CalculateListHeight(30)),
		windowWidth:  80,
		windowHeight: 30,
	}
	vm.OnStateChanged(v.onStateChanged)
	return v
}

// Init starts the first page load.
func (v *UsersListView) Init() tea.Cmd {
	return tea.Batch(v.vm.ViewDidLoad(), v.spinner.Tick)
}

// Close cancels fetches still in flight.
func (v *UsersListView) Close() {
	v.vm.Close()
}

// SearchFocused reports whether key presses go to the search box.
func (v *UsersListView) SearchFocused() bool {
	return v.search.Focused()
}

// SelectedUser returns the highlighted user, if any.
func (v *UsersListView) SelectedUser() (domain.User, bool) {
	if v.selectedIndex < 0 || v.selectedIndex >= len(v.users) {
		return domain.User{}, false
	}
	return v.users[v.selectedIndex], true
}

// Update handles messages.
func (v *UsersListView) Update(msg tea.Msg) (*UsersListView, tea.Cmd) {
	if v.vm.Update(msg) {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.windowWidth = msg.Width
		v.windowHeight = msg.Height
		v.viewport.Width = layout.ContentWidth(msg.Width)
		v.viewport.Height = layout.CalculateListHeight(msg.Height)
		v.search.Width = layout.ContentWidth(msg.Width) - 6
		v.refreshContent()
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.search.Focused() {
			return v, v.handleSearchKey(msg)
		}
		return v, v.handleKey(msg)
	}

	return v, nil
}

func (v *UsersListView) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		query := v.search.Value()
		v.search.Blur()
		cmd := v.vm.Search(query)
		if cmd != nil {
			v.lastQuery = strings.TrimSpace(query)
		}
		return cmd

	case "esc":
		v.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return cmd
}

func (v *UsersListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if v.selectedIndex > 0 {
			v.selectedIndex--
			v.refreshContent()
		}

	case "down", "j":
		if v.selectedIndex < len(v.users)-1 {
			v.selectedIndex++
			v.refreshContent()
		}
		if v.selectedIndex == len(v.users)-1 {
			return v.vm.LoadMore()
		}

	case "G", "end":
		if len(v.users) > 0 {
			v.selectedIndex = len(v.users) - 1
			v.refreshContent()
			return v.vm.LoadMore()
		}

	case "/":
		return v.search.Focus()

	case "esc":
		cmd := v.vm.CancelSearch()
		v.search.SetValue("")
		v.lastQuery = ""
		return cmd

	case "r":
		v.search.SetValue("")
		v.lastQuery = ""
		return v.vm.Refresh()

	case "enter":
		if user, ok := v.SelectedUser(); ok {
			return func() tea.Msg { return OpenUserMsg{Login: user.Login} }
		}
	}
	return nil
}

// onStateChanged keeps the rendered rows in step with the view-model.
func (v *UsersListView) onStateChanged(state domain.ListState) {
	switch s := state.(type) {
	case domain.ListLoaded:
		v.users = s.Users
		v.selectedIndex = 0
		v.viewport.GotoTop()
	case domain.ListLoadedMore:
		v.users = s.Users
	case domain.ListLoading, domain.ListError:
		v.users = nil
		v.selectedIndex = 0
	}
	if v.selectedIndex >= len(v.users) {
		v.selectedIndex = max(len(v.users)-1, 0)
	}
	v.refreshContent()
}

// refreshContent re-renders the rows and keeps the selection visible.
func (v *UsersListView) refreshContent() {
	styles := GetGlobalThemeManager().GetStyles()

	if len(v.users) == 0 {
		v.viewport.SetContent(styles.Empty.Render(v.localize(i18n.KeyEmptyUsers)))
		return
	}

	lines := make([]string, 0, len(v.users))
	for i, user := range v.users {
		if i == v.selectedIndex {
			lines = append(lines, styles.RowCursor.Render("▸ ")+styles.RowSelected.Render(user.Login)+" "+styles.RowMeta.Render(fmt.Sprintf("#%d", user.ID)))
			continue
		}
		lines = append(lines, "  "+FormatUser(user))
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))

	if v.selectedIndex < v.viewport.YOffset {
		v.viewport.SetYOffset(v.selectedIndex)
	} else if v.selectedIndex >= v.viewport.YOffset+v.viewport.Height {
		v.viewport.SetYOffset(v.selectedIndex - v.viewport.Height + 1)
	}
}

// View renders the users list screen.
func (v *UsersListView) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var content strings.Builder

	title := styles.Header.Render(v.localize(i18n.KeyUsersTitle))
	if v.vm.Searching() && v.lastQuery != "" {
		title += "  " + styles.SearchBadge.Render(fmt.Sprintf("%q", v.lastQuery))
	}
	content.WriteString(title)
	content.WriteString("\n\n")

	if v.search.Focused() {
		content.WriteString(styles.SearchFocused.Render(v.search.View()))
	} else {
		content.WriteString(styles.SearchInput.Render(v.search.View()))
	}
	content.WriteString("\n")

	switch s := v.vm.State().(type) {
	case domain.ListLoading:
		content.WriteString(fmt.Sprintf("%s %s", v.spinner.View(), styles.Loading.Render(v.localize(i18n.KeyLoading))))
	case domain.ListError:
		content.WriteString(styles.ErrorBanner.Render(s.Message))
		content.WriteString("\n")
		content.WriteString(styles.ShortcutKey.Render("r") + " " + styles.ShortcutDesc.Render(v.localize(i18n.KeyRetry)))
	case domain.ListLoadingMore:
		content.WriteString(v.viewport.View())
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("%s %s", v.spinner.View(), styles.Loading.Render(v.localize(i18n.KeyLoading))))
	default:
		content.WriteString(v.viewport.View())
	}
	content.WriteString("\n")

	content.WriteString(v.renderFooter())
	return content.String()
}

// renderFooter renders the footer with keyboard shortcuts.
func (v *UsersListView) renderFooter() string {
	tm := GetGlobalThemeManager()
	if v.search.Focused() {
		return tm.RenderShortcuts([2]string{"enter", "search"}, [2]string{"esc", "close"})
	}
	if v.vm.Searching() {
		return tm.RenderShortcuts(
			[2]string{"↑/↓", "navigate"},
			[2]string{"enter", "open"},
			[2]string{"/", "search"},
			[2]string{"esc", "clear search"},
			[2]string{"r", "refresh"},
			[2]string{"q", "quit"},
		)
	}
	return tm.RenderShortcuts(
		[2]string{"↑/↓", "navigate"},
		[2]string{"enter", "open"},
		[2]string{"/", "search"},
		[2]string{"r", "refresh"},
		[2]string{"q", "quit"},
	)
}

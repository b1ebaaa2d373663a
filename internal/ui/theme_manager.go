package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/gitscout/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	// Color values (as lipgloss.Color)
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSelected  lipgloss.Color
	ColorText      lipgloss.Color

	// Header styles
	Header       lipgloss.Style
	Title        lipgloss.Style
	SectionTitle lipgloss.Style

	// List row styles
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowCursor   lipgloss.Style
	RowMeta     lipgloss.Style

	// Search styles
	SearchInput   lipgloss.Style
	SearchFocused lipgloss.Style
	SearchBadge   lipgloss.Style

	// Profile styles
	StatValue lipgloss.Style
	StatLabel lipgloss.Style
	Stars     lipgloss.Style
	Language  lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Status styles
	ErrorBanner lipgloss.Style
	Loading     lipgloss.Style
	Empty       lipgloss.Style

	// Separator style
	Separator lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors
	bg := tm.currentTheme.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorSelected := lipgloss.Color(c.Selected)
	colorText := lipgloss.Color(c.Text)

	tm.styles.ColorPrimary = colorPrimary
	tm.styles.ColorSecondary = colorSecondary
	tm.styles.ColorSuccess = colorSuccess
	tm.styles.ColorWarning = colorWarning
	tm.styles.ColorError = colorError
	tm.styles.ColorMuted = colorMuted
	tm.styles.ColorBorder = colorBorder
	tm.styles.ColorSelected = colorSelected
	tm.styles.ColorText = colorText

	// Header styles
	tm.styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Background(lipgloss.Color(bg.Header)).
		Padding(0, 1)

	tm.styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorText)

	tm.styles.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary).
		MarginTop(1)

	// List row styles
	tm.styles.RowSelected = lipgloss.NewStyle().
		Foreground(colorSelected).
		Bold(true)

	tm.styles.RowNormal = lipgloss.NewStyle().
		Foreground(colorText)

	tm.styles.RowCursor = lipgloss.NewStyle().
		Foreground(colorSelected).
		Bold(true)

	tm.styles.RowMeta = lipgloss.NewStyle().
		Foreground(colorMuted)

	// Search styles
	tm.styles.SearchInput = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.SearchInput)).
		Padding(0, 1)

	tm.styles.SearchFocused = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.SearchFocused)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	tm.styles.SearchBadge = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	// Profile styles
	tm.styles.StatValue = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	tm.styles.StatLabel = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.Stars = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Stars))

	tm.styles.Language = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Language)).
		Italic(true)

	// Footer styles
	tm.styles.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder)

	tm.styles.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	tm.styles.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	// Status styles
	tm.styles.ErrorBanner = lipgloss.NewStyle().
		Foreground(colorError).
		Background(lipgloss.Color(bg.ErrorBanner)).
		Bold(true).
		Padding(0, 1)

	tm.styles.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	tm.styles.Empty = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	tm.styles.Separator = lipgloss.NewStyle().
		Foreground(colorBorder)
}

// RenderShortcuts renders "key desc" pairs for a footer.
func (tm *ThemeManager) RenderShortcuts(pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s %s",
			tm.styles.ShortcutKey.Render(p[0]),
			tm.styles.ShortcutDesc.Render(p[1]),
		))
	}
	return tm.styles.Footer.Render(strings.Join(parts, "  •  "))
}

// RenderSeparator returns a styled horizontal separator.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}

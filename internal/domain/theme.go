package domain

import (
	"fmt"
	"regexp"
)

// Theme represents a visual theme for the TUI.
type Theme struct {
	Name        string
	Description string
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the primary color palette for a theme.
type ThemeColors struct {
	// Primary accent color (used for selected rows, borders, etc.)
	Primary string

	// Secondary accent color (darker shade of primary)
	Secondary string

	Success string
	Warning string
	Error   string

	// Muted text color (for ids, counters and hints)
	Muted string

	Border   string
	Selected string
	Text     string

	// Repository decorations
	Stars    string
	Language string
}

// ThemeBackgrounds defines background colors for various UI elements.
type ThemeBackgrounds struct {
	Header        string
	SearchInput   string
	SearchFocused string
	ErrorBanner   string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	colors := map[string]string{
		"Primary":       t.Colors.Primary,
		"Secondary":     t.Colors.Secondary,
		"Success":       t.Colors.Success,
		"Warning":       t.Colors.Warning,
		"Error":         t.Colors.Error,
		"Muted":         t.Colors.Muted,
		"Border":        t.Colors.Border,
		"Selected":      t.Colors.Selected,
		"Text":          t.Colors.Text,
		"Stars":         t.Colors.Stars,
		"Language":      t.Colors.Language,
		"Header":        t.Backgrounds.Header,
		"SearchInput":   t.Backgrounds.SearchInput,
		"SearchFocused": t.Backgrounds.SearchFocused,
		"ErrorBanner":   t.Backgrounds.ErrorBanner,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", name, color)
		}
	}

	return nil
}

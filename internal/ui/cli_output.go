package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/gitscout/internal/domain"
)

func prefix(color lipgloss.Color, label string) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(label)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", prefix(defaultThemeManager.styles.ColorSuccess, "[SUCCESS]"), message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("%s %s\n", prefix(defaultThemeManager.styles.ColorError, "[ERROR]"), message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", prefix(defaultThemeManager.styles.ColorPrimary, "[INFO]"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", prefix(defaultThemeManager.styles.ColorWarning, "[WARNING]"), message)
}

// PrintSubtle prints a muted/subtle message
func PrintSubtle(message string) {
	fmt.Println(lipgloss.NewStyle().Foreground(defaultThemeManager.styles.ColorMuted).Render(message))
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return lipgloss.NewStyle().
		Foreground(defaultThemeManager.styles.ColorPrimary).
		Bold(true).
		Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	return lipgloss.NewStyle().
		Foreground(defaultThemeManager.styles.ColorMuted).
		Render(label)
}

// FormatUser renders one users list row: login followed by the muted ID.
func FormatUser(u domain.User) string {
	styles := defaultThemeManager.styles
	return fmt.Sprintf("%s %s", styles.RowNormal.Render(u.Login), styles.RowMeta.Render(fmt.Sprintf("#%d", u.ID)))
}

// FormatRepository renders one repository row with stars and language.
// unknownLanguage is shown for repositories without a detected language.
func FormatRepository(r domain.Repository, unknownLanguage string) string {
	styles := defaultThemeManager.styles

	line := fmt.Sprintf("%s  %s  %s",
		styles.RowNormal.Render(r.Name),
		styles.Stars.Render(fmt.Sprintf("★ %d", r.StarsCount)),
		styles.Language.Render(r.LanguageOrDefault(unknownLanguage)),
	)
	if desc := strings.TrimSpace(r.DescriptionText()); desc != "" {
		line += "\n    " + styles.RowMeta.Render(truncate(desc, 80))
	}
	return line
}

// FormatStats renders the followers and following counters of a profile.
func FormatStats(d domain.UserDetail, followersLabel, followingLabel string) string {
	styles := defaultThemeManager.styles
	return fmt.Sprintf("%s %s   %s %s",
		styles.StatValue.Render(fmt.Sprint(d.Followers)),
		styles.StatLabel.Render(followersLabel),
		styles.StatValue.Render(fmt.Sprint(d.Following)),
		styles.StatLabel.Render(followingLabel),
	)
}

// FormatTotalStars renders the stars summed across repos.
func FormatTotalStars(repos []domain.Repository, label string) string {
	styles := defaultThemeManager.styles
	return fmt.Sprintf("%s %s",
		styles.Stars.Render(fmt.Sprintf("★ %d", domain.TotalStars(repos))),
		styles.StatLabel.Render(label),
	)
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

package ui

// defaultThemeManager is the global theme manager instance.
// It starts with the midnight theme and is replaced when the application
// loads the user's theme preference.
var defaultThemeManager *ThemeManager

func init() {
	defaultThemeManager = NewThemeManager(ThemeMidnight)
}

// SetGlobalTheme updates the global theme manager with a new theme.
// After calling this, all views render with the new theme colors.
func SetGlobalTheme(theme string) {
	defaultThemeManager.SetTheme(GetThemeByName(theme))
}

// GetGlobalThemeManager returns the global theme manager instance.
// Views call GetGlobalThemeManager().GetStyles() on every render so a theme
// change applies immediately.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}

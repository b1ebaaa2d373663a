package ui

import "github.com/yourusername/gitscout/internal/domain"

// Available theme presets for the TUI.
var (
	// ThemeMidnight is the default dark theme with GitHub-like blue accents.
	ThemeMidnight = domain.Theme{
		Name:        "midnight",
		Description: "Dark theme with blue accents (default)",
		Colors: domain.ThemeColors{
			Primary:   "#58A6FF",
			Secondary: "#1F6FEB",
			Success:   "#3FB950",
			Warning:   "#D29922",
			Error:     "#F85149",
			Muted:     "#8B949E",
			Border:    "#30363D",
			Selected:  "#58A6FF",
			Text:      "#E6EDF3",
			Stars:     "#E3B341",
			Language:  "#A5D6FF",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Header:        "#161B22",
			SearchInput:   "#0D1117",
			SearchFocused: "#161B22",
			ErrorBanner:   "#3D1214",
		},
	}

	// ThemePaper is a light theme for bright terminals.
	ThemePaper = domain.Theme{
		Name:        "paper",
		Description: "Light theme for bright terminals",
		Colors: domain.ThemeColors{
			Primary:   "#0969DA",
			Secondary: "#0550AE",
			Success:   "#1A7F37",
			Warning:   "#9A6700",
			Error:     "#CF222E",
			Muted:     "#57606A",
			Border:    "#D0D7DE",
			Selected:  "#0969DA",
			Text:      "#1F2328",
			Stars:     "#9A6700",
			Language:  "#8250DF",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Header:        "#F6F8FA",
			SearchInput:   "#FFFFFF",
			SearchFocused: "#F6F8FA",
			ErrorBanner:   "#FFEBE9",
		},
	}

	// ThemeWarm uses orange-rust tones.
	ThemeWarm = domain.Theme{
		Name:        "warm",
		Description: "Warm theme with orange-rust accents",
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Selected:  "#C15F3C",
			Text:      "#E8E6E3",
			Stars:     "#D4945A",
			Language:  "#7A9A6E",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Header:        "#1A1A1A",
			SearchInput:   "#2F2A1F",
			SearchFocused: "#3A2F1F",
			ErrorBanner:   "#3A1F1F",
		},
	}

	// ThemeForest is a natural green theme.
	ThemeForest = domain.Theme{
		Name:        "forest",
		Description: "Natural green theme",
		Colors: domain.ThemeColors{
			Primary:   "#6B9A6B",
			Secondary: "#557A55",
			Success:   "#7AAA7A",
			Warning:   "#D4A45A",
			Error:     "#C17B6B",
			Muted:     "#A1B1A1",
			Border:    "#2A3A2A",
			Selected:  "#6B9A6B",
			Text:      "#E3EDE3",
			Stars:     "#D4A45A",
			Language:  "#A1C1A1",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Header:        "#15201A",
			SearchInput:   "#1F2A1F",
			SearchFocused: "#2A3A2A",
			ErrorBanner:   "#3A1F1F",
		},
	}

	// ThemeMonochrome is a minimalist grayscale theme.
	ThemeMonochrome = domain.Theme{
		Name:        "monochrome",
		Description: "Minimalist grayscale theme",
		Colors: domain.ThemeColors{
			Primary:   "#888888",
			Secondary: "#666666",
			Success:   "#999999",
			Warning:   "#AAAAAA",
			Error:     "#777777",
			Muted:     "#666666",
			Border:    "#333333",
			Selected:  "#BBBBBB",
			Text:      "#EEEEEE",
			Stars:     "#AAAAAA",
			Language:  "#999999",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Header:        "#1A1A1A",
			SearchInput:   "#222222",
			SearchFocused: "#2A2A2A",
			ErrorBanner:   "#2A2A2A",
		},
	}
)

// AllThemes returns all available theme presets.
func AllThemes() []domain.Theme {
	return []domain.Theme{
		ThemeMidnight,
		ThemePaper,
		ThemeWarm,
		ThemeForest,
		ThemeMonochrome,
	}
}

// GetThemeByName returns a theme by its name, or the default theme if not found.
func GetThemeByName(name string) domain.Theme {
	for _, theme := range AllThemes() {
		if theme.Name == name {
			return theme
		}
	}
	return ThemeMidnight
}

// GetThemeNames returns a slice of all theme names.
func GetThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
	}
	return names
}

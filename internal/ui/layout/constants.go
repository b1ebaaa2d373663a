package layout

// Spacing constants for consistent padding and margins
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
)

// Standard UI element heights
const (
	HeaderHeight  = 2
	SearchHeight  = 3
	FooterHeight  = 3
	ProfileHeight = 5
	StatusHeight  = 1
)

// MinViewportHeight keeps lists usable in very small terminals.
const MinViewportHeight = 3

// CalculateListHeight calculates the rows available to the users list.
func CalculateListHeight(windowHeight int) int {
	return clamp(windowHeight - HeaderHeight - SearchHeight - FooterHeight - StatusHeight)
}

// CalculateRepositoriesHeight calculates the rows available to the
// repositories list below a profile.
func CalculateRepositoriesHeight(windowHeight int) int {
	return clamp(windowHeight - HeaderHeight - ProfileHeight - FooterHeight - StatusHeight)
}

// ContentWidth returns the usable width inside the horizontal padding.
func ContentWidth(windowWidth int) int {
	if windowWidth <= 2*SpacingXS {
		return windowWidth
	}
	return windowWidth - 2*SpacingXS
}

func clamp(height int) int {
	if height < MinViewportHeight {
		return MinViewportHeight
	}
	return height
}

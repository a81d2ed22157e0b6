package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - plugin prefix, titles
	ColorSecondary Color = "86" // Cyan - variable names
)

// Message colors
const (
	ColorError   Color = "196" // Bright red
	ColorWarning Color = "214" // Orange
)

// Text colors
const (
	ColorHighlight Color = "255" // White - values
	ColorMuted     Color = "241" // Gray - error detail
	ColorSubtle    Color = "245" // Light gray - labels
)

// Repository state colors
const (
	ColorClean Color = "2" // Green - no local changes
	ColorDirty Color = "3" // Yellow - uncommitted changes
)

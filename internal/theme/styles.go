package theme

import "github.com/charmbracelet/lipgloss"

// Log sink styles
var (
	PrefixStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ErrorDetailStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Stats table styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	VariableStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	CleanStyle = lipgloss.NewStyle().
			Foreground(ColorClean)

	DirtyStyle = lipgloss.NewStyle().
			Foreground(ColorDirty)
)

// DeltaStyle returns the style for a dirty path count
func DeltaStyle(delta int) lipgloss.Style {
	if delta > 0 {
		return DirtyStyle
	}
	return CleanStyle
}

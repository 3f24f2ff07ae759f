// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import lipgloss "charm.land/lipgloss/v2"

var current Palette

// Style exports. Rebuilt by SetTheme.
var (
	TitleStyle       lipgloss.Style
	TextMutedStyle   lipgloss.Style
	TextPrimaryStyle lipgloss.Style

	InputFocusedStyle lipgloss.Style
	InputBlurredStyle lipgloss.Style

	ItemStyle          lipgloss.Style
	ItemCompletedStyle lipgloss.Style
	ItemCursorStyle    lipgloss.Style
	CheckActiveStyle   lipgloss.Style
	CheckDoneStyle     lipgloss.Style

	FilterActiveStyle lipgloss.Style
	FilterLinkStyle   lipgloss.Style
	FilterKeyStyle    lipgloss.Style

	StatusStyle    lipgloss.Style
	HelpModalStyle lipgloss.Style
	HelpHintStyle  lipgloss.Style
)

// Current returns the active palette.
func Current() Palette {
	return current
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	current = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextPrimaryStyle = lipgloss.NewStyle().
		Foreground(p.Primary)

	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)
	InputBlurredStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)

	ItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	ItemCompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	ItemCursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CheckActiveStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CheckDoneStyle = lipgloss.NewStyle().
		Foreground(p.Success)

	FilterActiveStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	FilterLinkStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Underline(true)
	FilterKeyStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	HelpModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	HelpHintStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

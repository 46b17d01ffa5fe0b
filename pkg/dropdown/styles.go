package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles controls the widget's appearance. Row content is sized by the
// widget before styling, so the option styles should color, not pad;
// the Menu style must keep a one-cell frame on every side, because row
// hit-testing assumes it.
type Styles struct {
	Label           lipgloss.Style
	Trigger         lipgloss.Style
	TriggerFocused  lipgloss.Style
	TriggerDisabled lipgloss.Style
	Placeholder     lipgloss.Style

	Menu              lipgloss.Style
	Option            lipgloss.Style
	OptionHighlighted lipgloss.Style
	OptionSelected    lipgloss.Style
	More              lipgloss.Style
	NoMatches         lipgloss.Style
}

// DefaultStyles returns the stock look: pink accent, dim chrome,
// rounded menu border.
func DefaultStyles() Styles {
	accent := lipgloss.Color("212")
	dim := lipgloss.Color("241")

	return Styles{
		Label:           lipgloss.NewStyle().Foreground(dim),
		Trigger:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")),
		TriggerFocused:  lipgloss.NewStyle().Padding(0, 1).Foreground(accent).Bold(true),
		TriggerDisabled: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240")),
		Placeholder:     lipgloss.NewStyle().Foreground(dim),

		Menu:              lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		Option:            lipgloss.NewStyle(),
		OptionHighlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
		OptionSelected:    lipgloss.NewStyle().Foreground(accent),
		More:              lipgloss.NewStyle().Foreground(dim),
		NoMatches:         lipgloss.NewStyle().Foreground(dim),
	}
}

// AccentStyles is DefaultStyles with a different accent color, for
// hosts that theme the widget from configuration.
func AccentStyles(accent lipgloss.Color) Styles {
	s := DefaultStyles()
	s.TriggerFocused = s.TriggerFocused.Foreground(accent)
	s.Menu = s.Menu.BorderForeground(accent)
	s.OptionSelected = s.OptionSelected.Foreground(accent)
	return s
}

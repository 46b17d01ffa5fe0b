package demo

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(11)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

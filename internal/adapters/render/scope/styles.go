package scope

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	key    lipgloss.Style
	value  lipgloss.Style
	name   lipgloss.Style
	unset  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		key:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		name:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		unset:  lipgloss.NewStyle().Faint(true),
	}
}

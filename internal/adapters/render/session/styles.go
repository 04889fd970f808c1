package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	document   lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	meta       lipgloss.Style
	option     lipgloss.Style
	correct    lipgloss.Style
	incorrect  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		document:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("150")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		option:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		correct:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		incorrect:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	section   lipgloss.Style
	provider  lipgloss.Style
	account   lipgloss.Style
	ok        lipgloss.Style
	pending   lipgloss.Style
	warning   lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	focused   lipgloss.Style
	disabled  lipgloss.Style
	liveBadge lipgloss.Style
	idleBadge lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:   lipgloss.NewStyle().MarginTop(1),
		provider:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		account:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ok:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		disabled:  lipgloss.NewStyle().Faint(true),
		liveBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		idleBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

package relations

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	subject   lipgloss.Style
	following lipgloss.Style
	requested lipgloss.Style
	none      lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		subject:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		following: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		requested: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		none:      lipgloss.NewStyle().Faint(true),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}

package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	funded     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	faint      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(10),
		value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		funded:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		faint:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

package report

import "github.com/charmbracelet/lipgloss"

const ruleWidth = 50

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	section lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	help    lipgloss.Style
}

// newStyles binds every style to r so color output follows the capabilities
// of the printer's writer rather than os.Stdout.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true),
		rule:    r.NewStyle().Faint(true),
		section: r.NewStyle().Bold(true),
		ok:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		help:    r.NewStyle().Faint(true),
	}
}

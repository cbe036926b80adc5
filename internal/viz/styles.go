package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/visualizer"
)

type styles struct {
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	help      lipgloss.Style
	graph     lipgloss.Style
	subtle    lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	finished  lipgloss.Style
	ready     lipgloss.Style
	helpPanel lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(8),
		value: lipgloss.NewStyle().
			Foreground(t.Text),
		help: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		graph: lipgloss.NewStyle().
			Foreground(t.Accent),
		subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		running: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Sorted),
		paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Compare),
		finished: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Sorted).
			Reverse(true),
		ready: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		helpPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
	}
}

func (s styles) status(st visualizer.Status) string {
	switch st {
	case visualizer.StatusRunning:
		return s.running.Render(st.String())
	case visualizer.StatusPaused:
		return s.paused.Render(st.String())
	case visualizer.StatusFinished:
		return s.finished.Render(" " + st.String() + " ")
	default:
		return s.ready.Render(st.String())
	}
}

// Separator draws a decorative rule.
func (s styles) separator(width int) string {
	if width < 8 {
		return s.subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return s.subtle.Render(left + " ◆ " + right)
}

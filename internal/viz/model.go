package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/visualizer"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	hudLines        = 10
	historyCapacity = 120
)

type TickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

var keyNames = map[string]visualizer.Key{
	" ":     visualizer.KeySpace,
	"space": visualizer.KeySpace,
	"p":     visualizer.KeyP,
	"r":     visualizer.KeyR,
	"s":     visualizer.KeyS,
	"left":  visualizer.KeyLeft,
	"h":     visualizer.KeyLeft,
	"right": visualizer.KeyRight,
	"l":     visualizer.KeyRight,
	"up":    visualizer.KeyUp,
	"k":     visualizer.KeyUp,
	"down":  visualizer.KeyDown,
	"j":     visualizer.KeyDown,
	"esc":   visualizer.KeyEscape,
	"q":     visualizer.KeyEscape,
}

// KeyFor maps a Bubble Tea key string onto a visualizer key.
func KeyFor(s string) (visualizer.Key, bool) {
	k, ok := keyNames[s]
	return k, ok
}

// Model adapts a visualizer.Controller to Bubble Tea. Each TickMsg is one
// frame; the next tick is scheduled with the delay the controller returns.
type Model struct {
	ctrl      *visualizer.Controller
	keys      visualizer.KeyMap
	theme     Theme
	styles    styles
	canvas    *Canvas
	width     int
	height    int
	work      []float64
	lastSteps int
	lastTotal int
	showHelp  bool
}

func NewModel(ctrl *visualizer.Controller, theme string) Model {
	t := GetTheme(theme)
	return Model{
		ctrl:   ctrl,
		keys:   visualizer.DefaultKeyMap(),
		theme:  t,
		styles: newStyles(t),
		canvas: NewCanvas(defaultWidth-2, defaultHeight-hudLines),
		width:  defaultWidth,
		height: defaultHeight,
		work:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick(visualizer.DefaultIdleDelay)
}

func (m Model) Theme() Theme { return m.theme }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.ctrl.Apply(visualizer.CmdQuit)
			return m, tea.Quit
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
		k, ok := KeyFor(msg.String())
		if !ok {
			return m, nil
		}
		if m.ctrl.Apply(m.keys.Translate(visualizer.KeyEvent(k))) {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas = NewCanvas(msg.Width-2, max(msg.Height-hudLines, 4))
		return m, nil

	case TickMsg:
		d := m.ctrl.Frame()
		m.recordWork()
		return m, tick(d)
	}
	return m, nil
}

// recordWork keeps the per-step counter delta for the sparkline. A fresh
// engine (step count back to zero) starts a new history.
func (m *Model) recordWork() {
	steps := m.ctrl.Steps()
	total := m.ctrl.Array().Counters().Total()
	switch {
	case steps < m.lastSteps || steps == 0:
		m.work = m.work[:0]
	case steps > m.lastSteps:
		m.work = append(m.work, float64(total-m.lastTotal))
		if len(m.work) > historyCapacity {
			m.work = m.work[len(m.work)-historyCapacity:]
		}
	}
	m.lastSteps, m.lastTotal = steps, total
}

func (m Model) View() string {
	f := m.ctrl.Snapshot()
	m.canvas.Plot(f.Elements)

	var s strings.Builder
	s.WriteString(m.styles.header.Render(f.Algorithm.String()) + "  " + m.styles.status(f.Status) + "\n")
	s.WriteString(m.styles.label.Render("speed") + m.styles.value.Render(fmt.Sprintf("%dms", f.Speed)) + "  ")
	s.WriteString(m.styles.label.Render("step") + m.styles.value.Render(fmt.Sprintf("%d", f.Step)) + "\n")
	s.WriteString(m.styles.label.Render("cmp") + m.styles.value.Render(fmt.Sprintf("%d", f.Counters.Comparisons)) + "  ")
	s.WriteString(m.styles.label.Render("swaps") + m.styles.value.Render(fmt.Sprintf("%d", f.Counters.Swaps)) + "  ")
	s.WriteString(m.styles.label.Render("writes") + m.styles.value.Render(fmt.Sprintf("%d", f.Counters.Writes)) + "\n")

	s.WriteString(m.canvas.Render(m.theme))

	if len(m.work) > 1 {
		chart := asciigraph.Plot(m.work,
			asciigraph.Height(2),
			asciigraph.Width(max(min(m.width-12, 60), 10)),
			asciigraph.Caption("work per step"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.separator(max(m.width-2, 0)) + "\n")
	s.WriteString(m.styles.help.Render("SP:Run P:Pause R:Reset S:Shuffle ←→:Algo ↑↓:Speed T:Theme ?:Help Q:Quit"))

	view := s.String()
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, m.styles.helpPanel.Render(helpText), view)
	}
	return view
}

const helpText = `KEYBOARD SHORTCUTS

Space    Start/Stop sorting
P        Pause/Resume
R        Reset to ascending order
S        Shuffle and stop
Left     Previous algorithm (reshuffles)
Right    Next algorithm (reshuffles)
Up       Faster (-5ms)
Down     Slower (+5ms)
T        Cycle themes
?        Toggle this help
Esc/Q    Quit`

// RunProgram blocks until the user quits.
func RunProgram(ctrl *visualizer.Controller, theme string) error {
	p := tea.NewProgram(NewModel(ctrl, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/bars"
)

// Eighth blocks, indexed by filled eighths of a cell.
var blocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type cell struct {
	r    rune
	role bars.Role
}

// Canvas is a character grid of vertical bars. Each cell resolves a bar top
// to an eighth of its height.
type Canvas struct {
	Width, Height int
	Grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{r: ' '}
		}
	}
}

// SetBar fills column col from the bottom up to eighths/8 cells.
func (c *Canvas) SetBar(col, eighths int, role bars.Role) {
	if col < 0 || col >= c.Width {
		return
	}
	for row := 0; row < c.Height; row++ {
		filled := eighths - (c.Height-1-row)*8
		r := ' '
		switch {
		case filled >= 8:
			r = blocks[8]
		case filled > 0:
			r = blocks[filled]
		}
		c.Grid[row][col] = cell{r: r, role: role}
	}
}

// Plot lays the bars across the full width. With more bars than columns a
// column shows the tallest bar it covers and the most urgent role among them.
func (c *Canvas) Plot(els []bars.Element) {
	c.Clear()
	n := len(els)
	if n == 0 {
		return
	}
	scale := func(v int) int { return v * c.Height * 8 / n }

	if n <= c.Width {
		for i, el := range els {
			for col := i * c.Width / n; col < (i+1)*c.Width/n; col++ {
				c.SetBar(col, scale(el.Value), el.Role)
			}
		}
		return
	}

	for col := 0; col < c.Width; col++ {
		lo, hi := col*n/c.Width, (col+1)*n/c.Width
		top, role := 0, bars.Idle
		for _, el := range els[lo:hi] {
			top = max(top, el.Value)
			if rolePriority(el.Role) > rolePriority(role) {
				role = el.Role
			}
		}
		c.SetBar(col, scale(top), role)
	}
}

func rolePriority(r bars.Role) int {
	switch r {
	case bars.Swapped:
		return 3
	case bars.Compare:
		return 2
	case bars.Sorted:
		return 1
	default:
		return 0
	}
}

// Render colours runs of equal role in one style call per run.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for _, row := range c.Grid {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].role == row[start].role {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, cl := range row[start:i] {
				run = append(run, cl.r)
			}
			style := lipgloss.NewStyle().Foreground(t.RoleColor(row[start].role))
			b.WriteString(style.Render(string(run)))
			start = i
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

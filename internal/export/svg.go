// Package export renders frames and traces as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/visualizer"
)

const background = "#1e1e1e"

var roleFill = map[bars.Role]string{
	bars.Idle:    "#0099ff",
	bars.Compare: "#ff9900",
	bars.Swapped: "#ff3333",
	bars.Sorted:  "#00ff66",
}

// FrameToSVG draws a frame the way the window does: one rect per bar,
// coloured by role, on the window background.
func FrameToSVG(f visualizer.Frame, width, height, headroom int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	n := len(f.Elements)
	for i, el := range f.Elements {
		r := visualizer.BarRect(i, el.Value, n, width, height, headroom)
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, r.X, r.Y, r.W, r.H, roleFill[el.Role]))
	}

	sb.WriteString(fmt.Sprintf(`<text x="10" y="24" fill="#c8c8c8" font-family="monospace" font-size="16">%s  %s  step %d</text>
`, f.Algorithm, f.Status, f.Step))
	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

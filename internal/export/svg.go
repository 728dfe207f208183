package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/san-kum/mazeview/internal/maze"
	"github.com/san-kum/mazeview/internal/render"
)

const background = "#0a0a0a"

// GridToSVG draws g with cells scale pixels wide: walls as lines in the
// palette's default color and searched cells as filled squares.
func GridToSVG(g maze.Grid, p render.Palette, scale float64) string {
	if g.Empty() || scale <= 0 {
		return ""
	}

	pad := scale / 2
	width := float64(g.Width)*scale + 2*pad
	height := float64(g.Height)*scale + 2*pad

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString("<g stroke=\"none\">\n")
	for i, cell := range g.Cells {
		role, ok := cellRole(cell)
		if !ok {
			continue
		}
		cx, cy := g.Coords(i)
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, pad+float64(cx)*scale, pad+float64(cy)*scale, scale, scale, Hex(p.Color(role))))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf("<g stroke=\"%s\" stroke-width=\"%.1f\" stroke-linecap=\"square\">\n",
		Hex(p.Color(render.Default)), scale/8))
	for i, cell := range g.Cells {
		cx, cy := g.Coords(i)
		x0 := pad + float64(cx)*scale
		y0 := pad + float64(cy)*scale
		x1, y1 := x0+scale, y0+scale

		// Shared walls are drawn once: up and left always, down and right
		// only on the last row and column.
		if cell.Up {
			line(&sb, x0, y0, x1, y0)
		}
		if cell.Left {
			line(&sb, x0, y0, x0, y1)
		}
		if cell.Down && cy == g.Height-1 {
			line(&sb, x0, y1, x1, y1)
		}
		if cell.Right && cx == g.Width-1 {
			line(&sb, x1, y0, x1, y1)
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func line(sb *strings.Builder, x0, y0, x1, y1 float64) {
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y1))
}

func cellRole(c maze.Cell) (render.Role, bool) {
	switch {
	case c.Route:
		return render.Route, true
	case c.Path:
		return render.Path, true
	case c.Observed:
		return render.Observed, true
	case c.Queued:
		return render.Queued, true
	}
	return render.Default, false
}

// Hex converts a terminal color (ANSI index or hex string) to an SVG hex
// color. Unparseable colors come back as white.
func Hex(c lipgloss.Color) string {
	tc := termenv.TrueColor.Color(string(c))
	if tc == nil {
		return "#ffffff"
	}
	return termenv.ConvertToRGB(tc).Hex()
}

// SeriesToSVG plots values as a polyline scaled to width x height.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := float64(len(values) - 1)
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

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

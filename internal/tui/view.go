package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mazeview/internal/algo"
)

func (m model) View() string {
	var body string
	switch m.screen {
	case screenMain:
		body = m.viewMain()
	case screenSize:
		body = m.viewSize()
	case screenSpeed:
		body = m.viewSpeed()
	case screenAlgorithm:
		body = m.viewAlgorithm()
	}
	return m.header() + body
}

func (m model) keyHelp() help.KeyMap {
	switch m.screen {
	case screenSize:
		return m.keys.size
	case screenSpeed:
		return m.keys.speed
	case screenAlgorithm:
		return m.keys.algorithm
	}
	return m.keys.main
}

func (m model) header() string {
	var b strings.Builder

	sel := m.sess.Selector
	b.WriteString(cyan.Render("mazeview") + dim.Render("  ") +
		white.Render(sel.Generator().DisplayName()) + dim.Render(" / ") +
		white.Render(sel.Solver().DisplayName()) + "\n")
	b.WriteString(m.help.View(m.keyHelp()) + "\n")

	status := dim.Render(fmt.Sprintf("%d steps/s", m.sess.Seq.Speed()))
	if m.sess.Generated {
		status = white.Render(m.sess.Status()) + dim.Render("  ") + status
	}
	if m.playing {
		status += "  " + green.Render("▶ running")
	}
	if m.message != "" {
		status += "  " + magenta.Render(m.message)
	}
	b.WriteString(status + "\n")
	b.WriteString(dimmer.Render(strings.Repeat("─", max(m.width, 1))) + "\n")

	return b.String()
}

// area returns the size of the region below the header. Before the first
// window size message it is just large enough for the current grid.
func (m model) area() (int, int) {
	if m.width > 0 && m.height > headerHeight {
		return m.width, m.height - headerHeight
	}
	g := m.sess.Grid()
	return 2*g.Width + 1, 2*g.Height + 1
}

func (m model) viewMain() string {
	w, h := m.area()
	frame, err := m.sess.Frame(w, h)
	if err != nil {
		return dim.Render("  " + err.Error())
	}
	return frame
}

func (m model) place(s string) string {
	w, h := m.area()
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s)
}

func (m model) viewSize() string {
	width, height := m.sess.Dims.Width(), m.sess.Dims.Height()
	widthBox, heightBox := box, box
	widthText, heightText := dim, dim
	if m.field == fieldWidth {
		width = m.size
		widthBox, widthText = activeBox, highlight
	} else {
		height = m.size
		heightBox, heightText = activeBox, highlight
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		widthBox.Render(widthText.Render(fmt.Sprintf("Width: %2d", width))),
		"    ",
		heightBox.Render(heightText.Render(fmt.Sprintf("Height: %2d", height))),
	)
	limit := dim.Render(fmt.Sprintf("max %d", m.sess.Dims.Max()))
	return m.place(lipgloss.JoinVertical(lipgloss.Center, row, limit))
}

func (m model) viewSpeed() string {
	return m.place(activeBox.Render(white.Render(fmt.Sprintf("Speed: %3d steps/s", m.speed))))
}

func (m model) viewAlgorithm() string {
	sel := m.sess.Selector
	focus := sel.Focus()

	var gens []string
	for _, g := range sel.Generators() {
		gens = append(gens, g.DisplayName())
	}
	var sols []string
	for _, s := range sel.Solvers() {
		sols = append(sols, s.DisplayName())
	}

	left := list("Generator", gens, sel.GeneratorCursor(), focus == algo.FocusGenerators)
	right := list("Solver", sols, sel.SolverCursor(), focus == algo.FocusSolvers)
	return m.place(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func list(title string, items []string, cursor int, focused bool) string {
	var b strings.Builder

	titleStyle := dim
	if focused {
		titleStyle = cyan.Underline(true)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	width := 0
	for _, item := range items {
		width = max(width, lipgloss.Width(item))
	}
	for i, item := range items {
		line := fmt.Sprintf("%-*s", width, item)
		switch {
		case i == cursor && focused:
			b.WriteString(cyan.Render("▸ ") + highlight.Render(line))
		case i == cursor:
			b.WriteString(dim.Render("▸ ") + white.Render(line))
		default:
			b.WriteString("  " + dim.Render(line))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	style := box
	if focused {
		style = activeBox
	}
	return style.Render(b.String())
}

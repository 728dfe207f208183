package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is an in-memory Surface.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Roles         [][]Role
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Roles:  make([][]Role, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Roles[i] = make([]Role, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int) { return c.Width, c.Height }

// Set writes a glyph. Positions outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune, role Role) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Grid[y][x] = r
	c.Roles[y][x] = role
}

// At returns the glyph and role at (x, y).
func (c *Canvas) At(x, y int) (rune, Role) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ' ', Default
	}
	return c.Grid[y][x], c.Roles[y][x]
}

// Clear resets the canvas to blanks.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = ' '
			c.Roles[i][j] = Default
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with palette colors. Runs of equal style are
// rendered together. Blank glyphs with a search role are painted as
// background so observed and queued cells stay visible.
func (c *Canvas) Styled(p Palette) string {
	type key struct {
		role  Role
		blank bool
	}
	styles := make(map[key]lipgloss.Style, 2*len(roleNames))
	for _, role := range Roles() {
		styles[key{role, false}] = lipgloss.NewStyle().Foreground(p.Color(role))
		styles[key{role, true}] = lipgloss.NewStyle().Background(p.Color(role))
	}

	var b, run strings.Builder
	for y, row := range c.Grid {
		var cur key
		for x, r := range row {
			k := key{role: c.Roles[y][x]}
			k.blank = r == ' ' && k.role != Default
			if x > 0 && k != cur {
				b.WriteString(styles[cur].Render(run.String()))
				run.Reset()
			}
			cur = k
			run.WriteRune(r)
		}
		if run.Len() > 0 {
			b.WriteString(styles[cur].Render(run.String()))
			run.Reset()
		}
		b.WriteString("\n")
	}
	return b.String()
}

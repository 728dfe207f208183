package render

import (
	"fmt"

	"github.com/san-kum/mazeview/internal/glyph"
	"github.com/san-kum/mazeview/internal/maze"
)

// links records which of a cell's four sides carry a path or route link.
type links struct {
	up, down, left, right bool
}

func (l links) any(o links) links {
	return links{l.up || o.up, l.down || o.down, l.left || o.left, l.right || o.right}
}

// Render draws g onto s, centered. Nothing is written when the grid is empty
// or the surface cannot hold it.
func Render(g maze.Grid, s Surface) error {
	if g.Empty() {
		return ErrEmptyGrid
	}
	mw, mh := 2*g.Width+1, 2*g.Height+1
	sw, sh := s.Size()
	if mw > sw || mh > sh {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrSurfaceTooSmall, mw, mh, sw, sh)
	}
	ox := (sw - mw) / 2
	oy := (sh - mh) / 2

	for i, cell := range g.Cells {
		cx, cy := g.Coords(i)
		x := ox + 2*cx + 1
		y := oy + 2*cy + 1

		path := connectors(g, cx, cy, func(c maze.Cell) bool { return c.Path })
		route := connectors(g, cx, cy, func(c maze.Cell) bool { return c.Route })

		edge(s, x, y-1, cell.Up, path.up, route.up, glyph.HWall, glyph.HLink)
		edge(s, x, y+1, cell.Down, path.down, route.down, glyph.HWall, glyph.HLink)
		edge(s, x-1, y, cell.Left, path.left, route.left, glyph.VWall, glyph.VLink)
		edge(s, x+1, y, cell.Right, path.right, route.right, glyph.VWall, glyph.VLink)

		switch {
		case cell.Path || cell.Route:
			l := path.any(route)
			s.Set(x, y, glyph.Path(glyph.Key(l.up, l.down, l.left, l.right)), Path)
		case cell.Observed:
			s.Set(x, y, ' ', Observed)
		case cell.Queued:
			s.Set(x, y, ' ', Queued)
		case cell.Start || cell.Stop:
			s.Set(x, y, cell.Char, Default)
		}

		ul, ur, ll, lr := corners(g, cx, cy)
		s.Set(x-1, y-1, ul, Default)
		s.Set(x+1, y-1, ur, Default)
		s.Set(x-1, y+1, ll, Default)
		s.Set(x+1, y+1, lr, Default)
	}
	return nil
}

func edge(s Surface, x, y int, wall, path, route bool, wallGlyph, linkGlyph rune) {
	if !wall && !path && !route {
		return
	}
	r := linkGlyph
	if wall {
		r = wallGlyph
	}
	role := Default
	if route {
		role = Route
	} else if path {
		role = Path
	}
	s.Set(x, y, r, role)
}

// connectors reports, per side, whether the cell at (x, y) and its
// neighbour both satisfy flag with no wall between them.
func connectors(g maze.Grid, x, y int, flag func(maze.Cell) bool) links {
	c, _ := g.At(x, y)
	if !flag(c) {
		return links{}
	}
	linked := func(open bool, nx, ny int) bool {
		n, ok := g.At(nx, ny)
		return open && ok && flag(n)
	}
	return links{
		up:    linked(!c.Up, x, y-1),
		down:  linked(!c.Down, x, y+1),
		left:  linked(!c.Left, x-1, y),
		right: linked(!c.Right, x+1, y),
	}
}

// corners resolves the four corner glyphs of the cell at (x, y) from the
// walls meeting there. Missing neighbours contribute no wall.
func corners(g maze.Grid, x, y int) (ul, ur, ll, lr rune) {
	c, _ := g.At(x, y)
	above, _ := g.At(x, y-1)
	below, _ := g.At(x, y+1)
	west, _ := g.At(x-1, y)
	east, _ := g.At(x+1, y)

	ul = glyph.Wall(glyph.Key(above.Left, c.Left, west.Up, c.Up))
	ur = glyph.Wall(glyph.Key(above.Right, c.Right, c.Up, east.Up))
	ll = glyph.Wall(glyph.Key(c.Left, below.Left, west.Down, c.Down))
	lr = glyph.Wall(glyph.Key(c.Right, below.Right, c.Down, east.Down))
	return ul, ur, ll, lr
}

package maze

// Grid stores cells in row-major order. Index i maps to (i%Width, i/Width).
type Grid struct {
	Width, Height int
	Cells         []Cell
}

// Empty reports whether the grid has no cells to draw.
func (g Grid) Empty() bool { return g.Width == 0 || g.Height == 0 }

// Index returns the linear index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.Width + x }

// Coords returns the coordinates of linear index i.
func (g Grid) Coords(i int) (x, y int) { return i % g.Width, i / g.Width }

// At returns the cell at (x, y) and false when the coordinates are outside
// the grid.
func (g Grid) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Cell{}, false
	}
	return g.Cells[g.Index(x, y)], true
}

// Counts tallies search-state flags over the whole grid.
type Counts struct {
	Cells    int
	Path     int
	Route    int
	Observed int
	Queued   int
}

// Counts returns per-flag totals.
func (g Grid) Counts() Counts {
	c := Counts{Cells: len(g.Cells)}
	for _, cell := range g.Cells {
		if cell.Path {
			c.Path++
		}
		if cell.Route {
			c.Route++
		}
		if cell.Observed {
			c.Observed++
		}
		if cell.Queued {
			c.Queued++
		}
	}
	return c
}

package maze

// Wall is the character that marks a wall position in a snapshot.
const Wall = '#'

// Cell is one maze square: the walls around it and the search state the
// producing algorithm left on it.
type Cell struct {
	Up, Down, Left, Right bool

	Path     bool
	Route    bool
	Observed bool
	Queued   bool

	Start bool
	Stop  bool

	// Char is the raw glyph from the snapshot, drawn for start/stop markers.
	Char rune
}

type flags struct {
	path, route, observed, queued, start, stop bool
}

var charFlags = map[rune]flags{
	'.': {path: true},
	'*': {path: true, route: true},
	's': {path: true, route: true, start: true},
	'S': {start: true},
	'x': {path: true, route: true, stop: true},
	'X': {stop: true},
	':': {observed: true},
	'q': {path: true, queued: true},
	'Q': {queued: true},
}

func (c *Cell) setChar(r rune) {
	f := charFlags[r]
	c.Char = r
	c.Path = f.path
	c.Route = f.route
	c.Observed = f.observed
	c.Queued = f.queued
	c.Start = f.start
	c.Stop = f.stop
}

// Walled reports whether all four walls are present.
func (c Cell) Walled() bool {
	return c.Up && c.Down && c.Left && c.Right
}

// Searched reports whether any search-state flag is set.
func (c Cell) Searched() bool {
	return c.Path || c.Route || c.Observed || c.Queued
}

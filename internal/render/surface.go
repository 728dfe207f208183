package render

// Role selects which palette color a glyph is drawn with.
type Role uint8

const (
	Default Role = iota
	Observed
	Queued
	Path
	Route
)

var roleNames = [...]string{"default", "observed", "queued", "path", "route"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Roles lists every role in palette order.
func Roles() []Role {
	return []Role{Default, Observed, Queued, Path, Route}
}

// Surface is a rectangular grid of character cells.
type Surface interface {
	Size() (w, h int)
	Set(x, y int, r rune, role Role)
}

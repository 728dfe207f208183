// Package dims owns the maze size and ratio settings and their clamping
// rules.
package dims

import (
	"math"
	"strings"
)

const (
	MinSize      = 2
	DefaultRatio = 0.5
)

// Dimensions holds width and height in [MinSize, Max] and a ratio in [0, 1].
type Dimensions struct {
	width  int
	height int
	max    int
	ratio  float64
}

func New() *Dimensions {
	return &Dimensions{
		width:  MinSize,
		height: MinSize,
		max:    MinSize,
		ratio:  DefaultRatio,
	}
}

func (d *Dimensions) Width() int      { return d.width }
func (d *Dimensions) Height() int     { return d.height }
func (d *Dimensions) Max() int        { return d.max }
func (d *Dimensions) Ratio() float64  { return d.ratio }
func (d *Dimensions) SetWidth(v int)  { d.width = clampInt(v, MinSize, d.max) }
func (d *Dimensions) SetHeight(v int) { d.height = clampInt(v, MinSize, d.max) }

// SetMax sets the largest allowed side, floored at MinSize. Width and height
// are pulled down when they no longer fit.
func (d *Dimensions) SetMax(v int) {
	if v < MinSize {
		v = MinSize
	}
	d.max = v
	d.SetWidth(d.width)
	d.SetHeight(d.height)
}

// SetRatio clamps r to [0, 1]. NaN is stored as 0.
func (d *Dimensions) SetRatio(r float64) {
	switch {
	case math.IsNaN(r), r < 0:
		d.ratio = 0
	case r > 1:
		d.ratio = 1
	default:
		d.ratio = r
	}
}

// Blank returns the empty maze block for the current size.
func (d *Dimensions) Blank() string { return Clear(d.width, d.height) }

// Clear synthesizes a fully walled width x height maze block with no
// trailing newline.
func Clear(width, height int) string {
	wall := strings.Repeat("#", 2*width+1)
	cells := strings.Repeat("# ", width) + "#"

	var b strings.Builder
	for i := 0; i < height; i++ {
		b.WriteString(wall)
		b.WriteByte('\n')
		b.WriteString(cells)
		b.WriteByte('\n')
	}
	b.WriteString(wall)
	return b.String()
}

// MaxForArea returns the largest maze side that fits a w x h display area.
func MaxForArea(w, h int) int {
	side := min(w, h)
	if side < 1 {
		return 0
	}
	return (side - 1) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

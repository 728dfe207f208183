// Package glyph holds the box-drawing lookup tables used to draw mazes.
//
// Both tables are indexed by a 4-bit key built from the arms that meet at a
// position: up=8, down=4, left=2, right=1. [Wall] returns heavy glyphs for
// wall corners; [Path] returns light glyphs for the links between visited
// cells. The empty key maps to a space in both.
package glyph

const (
	HWall = '━'
	VWall = '┃'
	HLink = '─'
	VLink = '│'
)

const (
	up    = 8
	down  = 4
	left  = 2
	right = 1
)

var wallTable = [16]rune{
	0:                        ' ',
	right:                    '╺',
	left:                     '╸',
	left | right:             '━',
	down:                     '╻',
	down | right:             '┏',
	down | left:              '┓',
	down | left | right:      '┳',
	up:                       '╹',
	up | right:               '┗',
	up | left:                '┛',
	up | left | right:        '┻',
	up | down:                '┃',
	up | down | right:        '┣',
	up | down | left:         '┫',
	up | down | left | right: '╋',
}

var pathTable = [16]rune{
	0:                        ' ',
	right:                    '╶',
	left:                     '╴',
	left | right:             '─',
	down:                     '╷',
	down | right:             '┌',
	down | left:              '┐',
	down | left | right:      '┬',
	up:                       '╵',
	up | right:               '└',
	up | left:                '┘',
	up | left | right:        '┴',
	up | down:                '│',
	up | down | right:        '├',
	up | down | left:         '┤',
	up | down | left | right: '┼',
}

// Key packs four arm flags into a table index.
func Key(u, d, l, r bool) uint8 {
	var k uint8
	if u {
		k |= up
	}
	if d {
		k |= down
	}
	if l {
		k |= left
	}
	if r {
		k |= right
	}
	return k
}

// Wall returns the heavy corner glyph for key.
func Wall(key uint8) rune { return wallTable[key&0xF] }

// Path returns the light connector glyph for key.
func Path(key uint8) rune { return pathTable[key&0xF] }

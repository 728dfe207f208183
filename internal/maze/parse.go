package maze

import (
	"fmt"
	"strings"
)

// MinSnapshotLen is the serialized size of the smallest valid 2x2 maze.
const MinSnapshotLen = 29

// Parse converts one snapshot block into a Grid. Text that is too short or
// malformed yields the zero Grid.
func Parse(text string) Grid {
	g, err := ParseStrict(text)
	if err != nil {
		return Grid{}
	}
	return g
}

// ParseStrict is Parse with the failure reported.
func ParseStrict(text string) (Grid, error) {
	if len(text) < MinSnapshotLen {
		return Grid{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(text))
	}

	rows := splitRows(text)
	if len(rows) < 3 || len(rows)%2 == 0 {
		return Grid{}, fmt.Errorf("%w: %d rows", ErrMalformed, len(rows))
	}

	height := (len(rows) - 1) / 2
	width := (len(rows[0]) - 1) / 2
	if width < 1 {
		return Grid{}, fmt.Errorf("%w: first row has %d columns", ErrMalformed, len(rows[0]))
	}
	for y := 0; y <= 2*height; y++ {
		if len(rows[y]) < 2*width+1 {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformed, y, len(rows[y]), 2*width+1)
		}
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		x := 2*(i%width) + 1
		y := 2*(i/width) + 1

		c := &cells[i]
		c.Up = rows[y-1][x] == Wall
		c.Down = rows[y+1][x] == Wall
		c.Left = rows[y][x-1] == Wall
		c.Right = rows[y][x+1] == Wall
		c.setChar(rows[y][x])
	}

	return Grid{Width: width, Height: height, Cells: cells}, nil
}

func splitRows(text string) [][]rune {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	return rows
}

package maze

import "errors"

var (
	// ErrTooShort indicates text shorter than the smallest 2x2 maze.
	ErrTooShort = errors.New("maze: snapshot too short")

	// ErrMalformed indicates rows that do not form a (2w+1)x(2h+1) block.
	ErrMalformed = errors.New("maze: malformed snapshot")
)

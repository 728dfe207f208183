package render

import "errors"

var (
	// ErrEmptyGrid indicates a grid with zero width or height.
	ErrEmptyGrid = errors.New("render: maze wasn't allocated")

	// ErrSurfaceTooSmall indicates a surface that cannot hold the maze.
	ErrSurfaceTooSmall = errors.New("render: maze was larger than surface")
)

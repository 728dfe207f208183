package algo

import "errors"

// ErrUnknown indicates a token that names no generator or solver.
var ErrUnknown = errors.New("algo: unknown algorithm")

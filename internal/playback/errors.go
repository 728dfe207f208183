package playback

import "errors"

// ErrEmpty indicates an operation that needs at least one snapshot.
var ErrEmpty = errors.New("playback: sequence has no snapshots")

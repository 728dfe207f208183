package storage

import "errors"

var ErrNotFound = errors.New("storage: recording not found")

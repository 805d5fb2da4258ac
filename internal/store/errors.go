package store

import "errors"

// ErrReadingArchive is returned when the data directory exists but cannot be
// listed.
var ErrReadingArchive = errors.New("error reading local archive")

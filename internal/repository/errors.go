package repository

import "errors"

// ErrNotFound is returned by Update/Delete when no record carries the id.
// Lookups signal a miss with a nil record instead.
var ErrNotFound = errors.New("record not found")

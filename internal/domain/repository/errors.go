package repository

import "errors"

// ErrNotFound is returned by mutations addressing a missing id. Plain
// lookups never return it; absence there is a nil entity with a nil
// error so aggregation code can compose without error plumbing.
var ErrNotFound = errors.New("not found")

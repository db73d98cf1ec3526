package repositories

import "errors"

// ErrNotFound is returned when the targeted collection has no record
// with the requested identifier. Handlers map it to HTTP 404.
var ErrNotFound = errors.New("record not found")

package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers decide
// how much of that to disclose.
var ErrNotFound = errors.New("record not found")

package repositories

import "errors"

// ErrDuplicateKey is returned by every storage driver when a unique constraint is violated.
var ErrDuplicateKey = errors.New("duplicate key")

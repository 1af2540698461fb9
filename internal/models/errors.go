package models

import "errors"

// ErrNotFound is returned by the repository when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by the repository when an insert violates a
// uniqueness constraint.
var ErrDuplicate = errors.New("duplicate row")

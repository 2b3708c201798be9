package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup by id, slug, username or email
	// misses. Absence is reported as this sentinel, never as a panic.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert would violate a uniqueness
	// constraint (username, email or slug).
	ErrDuplicate = errors.New("duplicate record")
)

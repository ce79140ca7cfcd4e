package storage

import "errors"

var (
	// ErrDuplicateAssignment maps the (order_id, date) uniqueness
	// violation; the writer counts it and keeps going.
	ErrDuplicateAssignment = errors.New("order already has an assignment for that date")

	ErrNotFound = errors.New("not found")

	ErrAlreadyClockedIn = errors.New("worker already clocked in")
	ErrNotClockedIn     = errors.New("worker is not clocked in")
)

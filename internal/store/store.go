package store

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
	// ErrInsufficientStock is returned when a quantity adjustment would
	// take a grocery's on-hand quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

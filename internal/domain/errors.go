package domain

import "errors"

var (
	// ErrNotFound is returned when an id does not match any record
	ErrNotFound = errors.New("not found")
	// ErrInvalidPath is returned when a folder path has no usable segments
	ErrInvalidPath = errors.New("invalid folder path")
	// ErrInvalidName is returned for a blank folder name or one containing the path separator
	ErrInvalidName = errors.New("invalid folder name")
	// ErrCycle is returned when a move would make a folder its own ancestor
	ErrCycle = errors.New("folder cannot be moved under itself")
)

package application

import (
	"errors"
	"fmt"

	"wordplay/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidPath      = domain.ErrInvalidPath
	ErrInvalidName      = domain.ErrInvalidName
	ErrCycle            = domain.ErrCycle
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a rejected folder move
type MoveError struct {
	SourceID string
	DestID   string
	Reason   string
	Err      error
}

func (e *MoveError) Error() string {
	dest := e.DestID
	if dest == "" {
		dest = "root"
	}
	return fmt.Sprintf("cannot move %s to %s: %s", e.SourceID, dest, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

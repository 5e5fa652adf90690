package repositories

import (
	"errors"
	"fmt"
)

// Store errors shared by every implementation.
var (
	// ErrNotFound is returned when no record matches the lookup, including
	// records that exist but belong to another owner.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
	ErrEmailExists  = fmt.Errorf("%w: email", ErrDuplicateKey)
)

package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvariantViolation  = "invariant violation"
	ErrMsgInvalidArgument     = "invalid argument"
	ErrMsgCategoryNotAssigned = "category not assigned"
	ErrMsgUnknownCategory     = "unknown category"
	ErrMsgItemNil             = "item is nil"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvariantViolation is returned when an item breaks the quality bounds of its category
	ErrInvariantViolation = errors.New(ErrMsgInvariantViolation)

	// ErrInvalidArgument is returned for a negative day count
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// ErrCategoryNotAssigned is an invariant violation: the item was never dispatched
	ErrCategoryNotAssigned = fmt.Errorf("%w: %s", ErrInvariantViolation, ErrMsgCategoryNotAssigned)

	// ErrUnknownCategory is returned when a catalog names a category that does not exist
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)
)

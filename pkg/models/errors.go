package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a score table that cannot produce a reliability
// estimate: too few items or respondents, or a cell that is not a number.
type InvalidInputError struct {
	Reason string
}

// NewInvalidInputError formats an InvalidInputError.
func NewInvalidInputError(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// Is lets errors.Is(err, ErrInvalidInput) match any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

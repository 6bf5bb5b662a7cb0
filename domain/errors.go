package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCalculatorType is returned for an unknown calculator identifier.
	ErrInvalidCalculatorType = errors.New("invalid calculator type")

	// ErrValidation is matched by every input-related failure, including
	// solver divergence.
	ErrValidation = errors.New("validation failed")
)

// FieldError is one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated constraint of a request, in rule order.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DivergenceError reports that a root finder did not converge. Partial holds
// the totals that could still be derived from the cashflows.
type DivergenceError struct {
	Message string
	Partial Result
}

func (e *DivergenceError) Error() string { return e.Message }

func (e *DivergenceError) Unwrap() error { return ErrValidation }

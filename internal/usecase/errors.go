package usecase

import (
	"errors"
	"fmt"
)

// ErrPendingPayment is the billing gate. It must reach the end user as a
// distinct condition, never folded into a generic validation failure.
var ErrPendingPayment = errors.New("patient has a pending payment; settle it before scheduling a new appointment")

// ValidationError is a malformed or out-of-policy field value. It touches no
// state; the caller re-prompts or aborts the single operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError is a schedule conflict: doctor double-booking or a second
// appointment for a patient on the same day.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NotFoundError is a registry/catalog miss or an out-of-range ordinal index.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func notFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a schedule conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

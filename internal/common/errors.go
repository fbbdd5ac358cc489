package common

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDependency   = errors.New("dependency failure")
)

// Error pairs a taxonomy sentinel with a message safe to show to API clients.
// errors.Is(err, ErrValidation) and friends match through Unwrap.
type Error struct {
	Kind    error
	Message string
	Field   string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}

// newError records a stack trace at the construction site; the HTTP layer
// prints it outside production.
func newError(kind error, field, msg string, cause error) error {
	return pkgerrors.WithStack(&Error{Kind: kind, Message: msg, Field: field, cause: cause})
}

func Validation(msg string) error { return newError(ErrValidation, "", msg, nil) }

func ValidationField(field, msg string) error { return newError(ErrValidation, field, msg, nil) }

func NotFound(msg string) error { return newError(ErrNotFound, "", msg, nil) }

func Unauthorized(msg string) error { return newError(ErrUnauthorized, "", msg, nil) }

// Conflict reports a duplicate value for a unique field.
func Conflict(field string) error {
	return newError(ErrConflict, field, "Duplicate field value: "+field, nil)
}

// Dependency wraps a failure of an outbound collaborator (object store).
func Dependency(msg string, cause error) error {
	return newError(ErrDependency, "", msg, cause)
}

// PublicMessage returns the client-facing message carried by err, or the
// generic fallback when err does not carry one.
func PublicMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

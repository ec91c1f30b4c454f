package errors

import "fmt"

// Kind represents the category of error
type Kind string

const (
	// KindValidation represents malformed, missing, or out-of-enum input
	KindValidation Kind = "validation"
	// KindNotFound represents a referenced id that is absent from the store
	KindNotFound Kind = "not_found"
	// KindStartup represents fatal boot-time failures such as a port bind error
	KindStartup Kind = "startup"
)

// codes maps each kind to the machine-readable code surfaced to API clients.
var codes = map[Kind]string{
	KindValidation: "VALIDATION",
	KindNotFound:   "NOT_FOUND",
	KindStartup:    "STARTUP",
}

// Error is the application error type carrying a kind and an optional cause
type Error struct {
	Kind    Kind
	Message string
	Err     error // Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error for error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// Extensions returns the metadata attached to the GraphQL error entry,
// so clients can branch on a stable code instead of the message text.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": codes[e.Kind],
	}
}

// NewValidation creates a validation error
func NewValidation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a not-found error
func NewNotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStartup creates a startup error wrapping its cause
func NewStartup(message string, err error) *Error {
	return &Error{Kind: KindStartup, Message: message, Err: err}
}

// IsKind checks if an error is of a specific kind
func IsKind(err error, kind Kind) bool {
	if appErr, ok := err.(*Error); ok {
		return appErr.Kind == kind
	}
	// Check wrapped errors
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		if inner := wrapped.Unwrap(); inner != nil {
			return IsKind(inner, kind)
		}
	}
	return false
}

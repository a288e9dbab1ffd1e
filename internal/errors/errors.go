package errors

import (
	"errors"
	"fmt"
)

// Metadata keys with a fixed meaning across the builder
const (
	// MetaKeyReason holds the machine readable refusal reason
	MetaKeyReason = "reason"
	// MetaKeySuggestion holds the closest valid input for a rejected name
	MetaKeySuggestion = "suggestion"
	// MetaKeyFields holds per-field validation messages
	MetaKeyFields = "validation_errors"
)

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && e.Code == t.Code
}

// WithMeta sets one metadata entry
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithReason tags the error with a machine readable refusal reason
func (e *Error) WithReason(reason string) *Error {
	return e.WithMeta(MetaKeyReason, reason)
}

// WithSuggestion records the closest valid input. Empty suggestions are
// ignored.
func (e *Error) WithSuggestion(suggestion string) *Error {
	if suggestion == "" {
		return e
	}
	return e.WithMeta(MetaKeySuggestion, suggestion)
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap wraps err, keeping its code and metadata when it is an *Error and
// falling back to Internal otherwise
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: message, Cause: err, Meta: existing.Meta}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a specific code, copying any metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err}
	var existing *Error
	if errors.As(err, &existing) {
		for k, v := range existing.Meta {
			wrapped.WithMeta(k, v)
		}
	}
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return New(CodeAlreadyExists, fmt.Sprintf(format, args...))
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return New(CodeInternal, fmt.Sprintf(format, args...))
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return New(CodeFailedPrecondition, fmt.Sprintf(format, args...))
}

// DataLossf reports stored state that can no longer be read back
func DataLossf(format string, args ...interface{}) *Error {
	return New(CodeDataLoss, fmt.Sprintf(format, args...))
}

package errors

import (
	"errors"
)

// Reasoner is implemented by domain refusals, such as an over-budget
// allocation or an unresolved specialty, that name why they happened
type Reasoner interface {
	error
	Reason() string
}

// Suggester is implemented by refusals that can name the closest valid input
type Suggester interface {
	DidYouMean() string
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetReason returns the refusal reason tagged with WithReason or carried by a
// Reasoner in the chain, or ""
func GetReason(err error) string {
	if reason, ok := GetMeta(err)[MetaKeyReason].(string); ok {
		return reason
	}
	var r Reasoner
	if errors.As(err, &r) {
		return r.Reason()
	}
	return ""
}

// GetSuggestion returns the suggested input recorded on err, or ""
func GetSuggestion(err error) string {
	if suggestion, ok := GetMeta(err)[MetaKeySuggestion].(string); ok {
		return suggestion
	}
	var s Suggester
	if errors.As(err, &s) {
		return s.DidYouMean()
	}
	return ""
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

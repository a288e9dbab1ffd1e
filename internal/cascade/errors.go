package cascade

import (
	"errors"
	"fmt"
)

// Rejection reasons reported by Commit
const (
	ReasonUnresolvedSpecialty = "unresolved_specialty"
	ReasonUnresolvedSubChoice = "unresolved_sub_choice"
	ReasonSessionMismatch     = "session_mismatch"
)

// ErrNilCharacter is returned when Commit is called without a character
var ErrNilCharacter = errors.New("character is required")

// UnresolvedSpecialtyError is returned when the specialty is not one the
// predator type offers
type UnresolvedSpecialtyError struct {
	Choice     string
	Specialty  string
	Suggestion string
}

func (e *UnresolvedSpecialtyError) Error() string {
	msg := fmt.Sprintf("specialty %q is not offered by %s", e.Specialty, e.Choice)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Reason returns the rejection reason
func (e *UnresolvedSpecialtyError) Reason() string { return ReasonUnresolvedSpecialty }

// DidYouMean returns the closest offered specialty key, or ""
func (e *UnresolvedSpecialtyError) DidYouMean() string { return e.Suggestion }

// UnresolvedSubChoiceError is returned when the discipline is not one the
// predator type offers
type UnresolvedSubChoiceError struct {
	Choice     string
	SubChoice  string
	Suggestion string
}

func (e *UnresolvedSubChoiceError) Error() string {
	msg := fmt.Sprintf("discipline %q is not offered by %s", e.SubChoice, e.Choice)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Reason returns the rejection reason
func (e *UnresolvedSubChoiceError) Reason() string { return ReasonUnresolvedSubChoice }

// DidYouMean returns the closest offered discipline, or ""
func (e *UnresolvedSubChoiceError) DidYouMean() string { return e.Suggestion }

// SessionMismatchError is returned when the allocation session was opened for
// a different predator type
type SessionMismatchError struct {
	Choice        string
	SessionChoice string
}

func (e *SessionMismatchError) Error() string {
	return fmt.Sprintf("allocation session belongs to %q, not %q", e.SessionChoice, e.Choice)
}

// Reason returns the rejection reason
func (e *SessionMismatchError) Reason() string { return ReasonSessionMismatch }

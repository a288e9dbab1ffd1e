package allocation

import "fmt"

// Refusal reasons reported by SetPoints, Validate and Restore
const (
	ReasonUnknownOption = "unknown_option"
	ReasonNegativeLevel = "negative_level"
	ReasonOverCap       = "over_cap"
	ReasonOverBudget    = "over_budget"
	ReasonCorruptState  = "corrupt_state"
)

// Refusal is implemented by every error this package returns
type Refusal interface {
	error
	Reason() string
}

// UnknownOptionError is returned when the group or option is not part of the
// open choice
type UnknownOptionError struct {
	Group  string
	Option string
}

func (e *UnknownOptionError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("unknown option group %q", e.Group)
	}
	return fmt.Sprintf("unknown option %q in group %q", e.Option, e.Group)
}

// Reason implements Refusal
func (e *UnknownOptionError) Reason() string { return ReasonUnknownOption }

// NegativeLevelError is returned for a level below zero
type NegativeLevelError struct {
	Group  string
	Option string
	Level  int
}

func (e *NegativeLevelError) Error() string {
	return fmt.Sprintf("%s/%s: level %d is negative", e.Group, e.Option, e.Level)
}

// Reason implements Refusal
func (e *NegativeLevelError) Reason() string { return ReasonNegativeLevel }

// OverCapError is returned when a level exceeds the option's own cap
type OverCapError struct {
	Group     string
	Option    string
	Requested int
	MaxLevel  int
}

func (e *OverCapError) Error() string {
	return fmt.Sprintf("%s/%s: level %d exceeds max level %d", e.Group, e.Option, e.Requested, e.MaxLevel)
}

// Reason implements Refusal
func (e *OverCapError) Reason() string { return ReasonOverCap }

// OverBudgetError is returned when a level would push the group past its
// shared budget
type OverBudgetError struct {
	Group         string
	Option        string
	Requested     int
	SpentByOthers int
	TotalPoints   int
}

func (e *OverBudgetError) Error() string {
	return fmt.Sprintf("%s/%s: level %d with %d spent elsewhere exceeds %d total points",
		e.Group, e.Option, e.Requested, e.SpentByOthers, e.TotalPoints)
}

// Reason implements Refusal
func (e *OverBudgetError) Reason() string { return ReasonOverBudget }

// CorruptStateError is returned by Restore when stored state no longer fits
// the choice it was opened for
type CorruptStateError struct {
	Choice string
	Cause  error
}

func (e *CorruptStateError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("corrupt allocation state for %q", e.Choice)
	}
	return fmt.Sprintf("corrupt allocation state for %q: %v", e.Choice, e.Cause)
}

func (e *CorruptStateError) Unwrap() error { return e.Cause }

// Reason implements Refusal
func (e *CorruptStateError) Reason() string { return ReasonCorruptState }

package predatortype

import (
	"time"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// Listing is a predator type as offered to one character
type Listing struct {
	PredatorType *vtm.PredatorType
	// Available is false when the character's clan may not take it
	Available bool
}

// Refusal explains why a point assignment was not applied
type Refusal struct {
	Reason  string
	Message string
}

// ListPredatorTypesInput defines the request for listing predator types
type ListPredatorTypesInput struct {
	// CharacterID is optional; when set, availability reflects the clan
	CharacterID string
	// Category filters the listing when set
	Category string
}

// ListPredatorTypesOutput defines the response for listing predator types
type ListPredatorTypesOutput struct {
	PredatorTypes []Listing
}

// OpenChoiceInput defines the request for opening a predator type
type OpenChoiceInput struct {
	CharacterID  string
	PredatorType string
}

// OpenChoiceOutput defines the response for opening a predator type
type OpenChoiceOutput struct {
	SessionID string
	View      allocation.SessionView
	ExpiresAt time.Time
	// ReplacedSessionID is the session this one superseded, if any
	ReplacedSessionID string
}

// SetPointsInput defines the request for assigning points
type SetPointsInput struct {
	SessionID string
	Group     string
	Option    string
	Level     int
}

// SetPointsOutput defines the response for assigning points. Refusal is nil
// when the assignment was applied.
type SetPointsOutput struct {
	View    allocation.SessionView
	Refusal *Refusal
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	SessionID   string
	CharacterID string
	View        allocation.SessionView
	ExpiresAt   time.Time
}

// CommitChoiceInput defines the request for confirming a predator type
type CommitChoiceInput struct {
	SessionID string
	// Specialty is "<skill>_<name>" or a bare specialty name
	Specialty string
	SubChoice string
}

// CommitChoiceOutput defines the response for confirming a predator type
type CommitChoiceOutput struct {
	Character *vtm.Character
	Result    *cascade.Result
}

// CancelChoiceInput defines the request for discarding a session
type CancelChoiceInput struct {
	SessionID string
}

// CancelChoiceOutput defines the response for discarding a session
type CancelChoiceOutput struct{}

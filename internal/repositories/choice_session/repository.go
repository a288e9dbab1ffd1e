// Package choicesession stores open predator type allocation sessions.
//
// A session lives only between opening a choice and committing or cancelling
// it. Each character has at most one open session; creating a new one
// replaces the old.
package choicesession

//go:generate mockgen -destination=mock/mock_repository.go -package=choicesessionmock github.com/KirkDiggler/vtm-builder/internal/repositories/choice_session Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
)

// ChoiceSession is an open allocation for one character
type ChoiceSession struct {
	ID          string           `json:"id"`
	CharacterID string           `json:"character_id"`
	State       allocation.State `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

// Repository defines the interface for choice session persistence
type Repository interface {
	// Create stores a session and replaces the character's previous one
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByCharacterID retrieves the character's open session
	// Returns errors.NotFound if the character has none
	GetByCharacterID(ctx context.Context, input GetByCharacterIDInput) (*GetByCharacterIDOutput, error)

	// Update saves new allocation state, keeping the original expiry
	// Returns errors.NotFound if the session has expired
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	ID          string
	CharacterID string
	State       allocation.State
	TTL         time.Duration // zero uses the repository default
}

// CreateOutput contains the created session
type CreateOutput struct {
	Session *ChoiceSession
	// ReplacedID is the character's previous session, if one was open
	ReplacedID string
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *ChoiceSession
}

// GetByCharacterIDInput contains parameters for finding a character's session
type GetByCharacterIDInput struct {
	CharacterID string
}

// GetByCharacterIDOutput contains the character's session
type GetByCharacterIDOutput struct {
	Session *ChoiceSession
}

// UpdateInput contains the session to save
type UpdateInput struct {
	Session *ChoiceSession
}

// UpdateOutput contains the saved session
type UpdateOutput struct {
	Session *ChoiceSession
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

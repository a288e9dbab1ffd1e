// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/vtm-builder/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// Service defines the interface for character operations
type Service interface {
	// Aggregate lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Derived state, acquired after the predator type is confirmed
	UpdateDisciplines(ctx context.Context, input *UpdateDisciplinesInput) (*UpdateDisciplinesOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID string
	Name     string
	Clan     string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *vtm.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *vtm.Character
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*vtm.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	// ClosedSessionID is the open choice session removed with the character
	ClosedSessionID string
}

// UpdateDisciplinesInput replaces the character's acquired powers and rituals
type UpdateDisciplinesInput struct {
	CharacterID string
	Disciplines []vtm.Power
	Rituals     []vtm.Ritual
}

// UpdateDisciplinesOutput defines the response for updating disciplines
type UpdateDisciplinesOutput struct {
	Character *vtm.Character
}

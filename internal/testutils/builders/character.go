// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	char *vtm.Character
}

// NewCharacterBuilder creates a builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		char: &vtm.Character{
			ID:          "char-test-123",
			PlayerID:    "player-test-123",
			Name:        "Test Kindred",
			Clan:        vtm.ClanBrujah,
			Disciplines: []vtm.Power{},
			Rituals:     []vtm.Ritual{},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.char.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.char.PlayerID = playerID
	return b
}

// WithClan sets the clan
func (b *CharacterBuilder) WithClan(clan string) *CharacterBuilder {
	b.char.Clan = clan
	return b
}

// WithPredatorType records a confirmed predator type
func (b *CharacterBuilder) WithPredatorType(name, subChoice string, specialty vtm.Specialty, selections ...vtm.Selection) *CharacterBuilder {
	b.char.PredatorType = vtm.PredatorTypeRecord{
		Name:       name,
		SubChoice:  subChoice,
		Specialty:  specialty,
		Selections: selections,
	}
	return b
}

// WithPower adds an acquired discipline power
func (b *CharacterBuilder) WithPower(name, discipline string, level int) *CharacterBuilder {
	b.char.Disciplines = append(b.char.Disciplines, vtm.Power{Name: name, Discipline: discipline, Level: level})
	return b
}

// WithRitual adds a ritual
func (b *CharacterBuilder) WithRitual(name string, level int) *CharacterBuilder {
	b.char.Rituals = append(b.char.Rituals, vtm.Ritual{Name: name, Level: level})
	return b
}

// WithTimestamps sets creation and update times
func (b *CharacterBuilder) WithTimestamps(createdAt, updatedAt int64) *CharacterBuilder {
	b.char.CreatedAt = createdAt
	b.char.UpdatedAt = updatedAt
	return b
}

// Build returns a copy of the built character
func (b *CharacterBuilder) Build() *vtm.Character {
	return b.char.Clone()
}

// Package events publishes builder events on the rpg-toolkit event bus.
package events

//go:generate mockgen -destination=mock/mock_publisher.go -package=eventsmock github.com/KirkDiggler/vtm-builder/internal/events Publisher

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

// Event types
const (
	EventPredatorTypeCommitted = "vtm.predator_type.committed"
	EventPredatorTypeCascade   = "vtm.predator_type.cascade"
)

// Context keys set on published events
const (
	KeyPredatorType       = "predator_type"
	KeySubChoice          = "sub_choice"
	KeyPreviousSubChoice  = "previous_sub_choice"
	KeyClearedDisciplines = "cleared_disciplines"
	KeyClearedRituals     = "cleared_rituals"
)

// Publisher announces committed predator types
type Publisher interface {
	PredatorTypeCommitted(ctx context.Context, char *vtm.Character, result *cascade.Result) error
}

// CharacterEntity wraps vtm.Character to implement core.Entity
type CharacterEntity struct {
	*vtm.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return "character"
}

var _ core.Entity = (*CharacterEntity)(nil)

// BusPublisher publishes onto an rpg-toolkit bus
type BusPublisher struct {
	bus rpgevents.EventBus
}

// NewBusPublisher creates a publisher for bus
func NewBusPublisher(bus rpgevents.EventBus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

// Bus exposes the underlying bus for subscribers
func (p *BusPublisher) Bus() rpgevents.EventBus {
	return p.bus
}

// PredatorTypeCommitted publishes the commit, then the cascade if a previously
// confirmed bonus discipline changed
func (p *BusPublisher) PredatorTypeCommitted(ctx context.Context, char *vtm.Character, result *cascade.Result) error {
	if char == nil || result == nil {
		return errors.InvalidArgument("character and result are required")
	}
	entity := &CharacterEntity{Character: char}

	committed := rpgevents.NewGameEvent(EventPredatorTypeCommitted, entity, nil)
	committed.Context().Set(KeyPredatorType, char.PredatorType.Name)
	committed.Context().Set(KeySubChoice, char.PredatorType.SubChoice)
	if err := p.bus.Publish(ctx, committed); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventPredatorTypeCommitted)
	}

	if !result.SubChoiceChanged || result.PreviousSubChoice == "" {
		return nil
	}

	cascaded := rpgevents.NewGameEvent(EventPredatorTypeCascade, entity, nil)
	cascaded.Context().Set(KeyPreviousSubChoice, result.PreviousSubChoice)
	cascaded.Context().Set(KeySubChoice, char.PredatorType.SubChoice)
	cascaded.Context().Set(KeyClearedDisciplines, len(result.ClearedDisciplines))
	cascaded.Context().Set(KeyClearedRituals, len(result.ClearedRituals))
	if err := p.bus.Publish(ctx, cascaded); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventPredatorTypeCascade)
	}

	return nil
}

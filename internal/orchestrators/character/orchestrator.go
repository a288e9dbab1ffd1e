// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/vtm-builder/internal/repositories/character"
	choicesession "github.com/KirkDiggler/vtm-builder/internal/repositories/choice_session"
	"github.com/KirkDiggler/vtm-builder/internal/services/character"
)

const (
	maxNameLength = 64
	maxDots       = 5
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	// SessionRepo is optional; when set, deleting a character also closes
	// its open predator type session
	SessionRepo choicesession.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	sessionRepo   choicesession.Repository
	idGen         idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		sessionRepo:   cfg.SessionRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter creates a character with no predator type yet
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	errors.ValidateRequired("clan", input.Clan, vb)
	if input.Clan != "" && !vtm.IsClan(input.Clan) {
		vb.InvalidField("clan", "unknown clan "+input.Clan)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{
		Character: &vtm.Character{
			ID:          o.idGen.Generate(),
			PlayerID:    input.PlayerID,
			Name:        input.Name,
			Clan:        input.Clan,
			Disciplines: []vtm.Power{},
			Rituals:     []vtm.Ritual{},
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "created character",
		"character_id", out.Character.ID,
		"player_id", out.Character.PlayerID,
		"clan", out.Character.Clan)

	return &character.CreateCharacterOutput{Character: out.Character}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &character.GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters lists a player's characters
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a character and any choice session it had open
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	output := &character.DeleteCharacterOutput{}
	if o.sessionRepo == nil {
		return output, nil
	}

	open, err := o.sessionRepo.GetByCharacterID(ctx, choicesession.GetByCharacterIDInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to look up open choice session",
				"character_id", input.CharacterID,
				"error", err.Error())
		}
		return output, nil
	}

	if _, err := o.sessionRepo.Delete(ctx, choicesession.DeleteInput{ID: open.Session.ID}); err != nil {
		slog.WarnContext(ctx, "failed to close choice session of deleted character",
			"character_id", input.CharacterID,
			"session_id", open.Session.ID,
			"error", err.Error())
		return output, nil
	}
	output.ClosedSessionID = open.Session.ID

	return output, nil
}

// UpdateDisciplines replaces the powers and rituals the character has
// acquired. The predator type must be confirmed first since changing its
// bonus discipline clears these lists.
func (o *Orchestrator) UpdateDisciplines(
	ctx context.Context,
	input *character.UpdateDisciplinesInput,
) (*character.UpdateDisciplinesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	validatePowers(input.Disciplines, vb)
	validateRituals(input.Disciplines, input.Rituals, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	if got.Character.PredatorType.IsZero() {
		return nil, errors.FailedPreconditionf("character %s has no confirmed predator type", input.CharacterID)
	}

	updated := got.Character.Clone()
	updated.Disciplines = append([]vtm.Power{}, input.Disciplines...)
	updated.Rituals = append([]vtm.Ritual{}, input.Rituals...)

	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update disciplines")
	}

	slog.DebugContext(ctx, "updated disciplines",
		"character_id", input.CharacterID,
		"powers", len(updated.Disciplines),
		"rituals", len(updated.Rituals))

	return &character.UpdateDisciplinesOutput{Character: out.Character}, nil
}

func validatePowers(powers []vtm.Power, vb *errors.ValidationBuilder) {
	seen := make(map[string]bool, len(powers))
	for _, p := range powers {
		errors.ValidateRequired("disciplines.name", p.Name, vb)
		if !vtm.IsDiscipline(p.Discipline) {
			vb.InvalidField("disciplines.discipline", "unknown discipline "+p.Discipline)
		}
		errors.ValidateRange("disciplines.level", p.Level, 1, maxDots, vb)
		if seen[p.Name] {
			vb.InvalidField("disciplines.name", "duplicate power "+p.Name)
		}
		seen[p.Name] = true
	}
}

// validateRituals requires a blood sorcery power for any ritual
func validateRituals(powers []vtm.Power, rituals []vtm.Ritual, vb *errors.ValidationBuilder) {
	if len(rituals) == 0 {
		return
	}

	sorcery := false
	for _, p := range powers {
		if p.Discipline == vtm.DisciplineBloodSorcery {
			sorcery = true
			break
		}
	}
	if !sorcery {
		vb.InvalidField("rituals", "rituals require a blood sorcery power")
	}

	for _, r := range rituals {
		errors.ValidateRequired("rituals.name", r.Name, vb)
		errors.ValidateRange("rituals.level", r.Level, 1, maxDots, vb)
	}
}

// Package predatortype implements the predator type build step: opening a
// choice, assigning its points, and committing it to the character
package predatortype

//go:generate mockgen -destination=mock/mock_service.go -package=predatortypemock github.com/KirkDiggler/vtm-builder/internal/orchestrators/predatortype Service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/catalog"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/events"
	"github.com/KirkDiggler/vtm-builder/internal/metrics"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/vtm-builder/internal/repositories/character"
	choicesession "github.com/KirkDiggler/vtm-builder/internal/repositories/choice_session"
)

// ReasonClanExcluded is reported when a clan may not take a predator type
const ReasonClanExcluded = "clan_excluded"

// Service defines the predator type step operations
type Service interface {
	ListPredatorTypes(ctx context.Context, input *ListPredatorTypesInput) (*ListPredatorTypesOutput, error)
	OpenChoice(ctx context.Context, input *OpenChoiceInput) (*OpenChoiceOutput, error)
	SetPoints(ctx context.Context, input *SetPointsInput) (*SetPointsOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	CommitChoice(ctx context.Context, input *CommitChoiceInput) (*CommitChoiceOutput, error)
	CancelChoice(ctx context.Context, input *CancelChoiceInput) (*CancelChoiceOutput, error)
}

// Config holds the dependencies for the predator type orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SessionRepo   choicesession.Repository
	Catalog       catalog.Catalog
	Publisher     events.Publisher
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	sessionRepo   choicesession.Repository
	catalog       catalog.Catalog
	publisher     events.Publisher
	idGen         idgen.Generator
}

// NewOrchestrator creates a new predator type orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		sessionRepo:   cfg.SessionRepo,
		catalog:       cfg.Catalog,
		publisher:     cfg.Publisher,
		idGen:         cfg.IDGenerator,
	}, nil
}

// ListPredatorTypes lists the catalog, optionally for one character's clan
func (o *orchestrator) ListPredatorTypes(
	ctx context.Context,
	input *ListPredatorTypesInput,
) (*ListPredatorTypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	predatorTypes, err := o.catalog.ListByCategory(input.Category)
	if err != nil {
		return nil, err
	}

	clan := ""
	if input.CharacterID != "" {
		char, err := o.getCharacter(ctx, input.CharacterID)
		if err != nil {
			return nil, err
		}
		clan = char.Clan
	}

	listings := make([]Listing, 0, len(predatorTypes))
	for _, pt := range predatorTypes {
		listings = append(listings, Listing{
			PredatorType: pt,
			Available:    clan == "" || pt.AvailableTo(clan),
		})
	}

	return &ListPredatorTypesOutput{PredatorTypes: listings}, nil
}

// OpenChoice starts a zeroed allocation session, replacing any the character
// already had open
func (o *orchestrator) OpenChoice(ctx context.Context, input *OpenChoiceInput) (*OpenChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("predator_type", input.PredatorType, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	pt, err := o.catalog.Get(input.PredatorType)
	if err != nil {
		return nil, err
	}
	if !pt.AvailableTo(char.Clan) {
		return nil, errors.FailedPreconditionf("clan %s cannot take the %s predator type", char.Clan, pt.Name).
			WithReason(ReasonClanExcluded)
	}

	session := allocation.Open(pt)
	created, err := o.sessionRepo.Create(ctx, choicesession.CreateInput{
		ID:          o.idGen.Generate(),
		CharacterID: char.ID,
		State:       session.Snapshot(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", pt.Name)
	}

	slog.InfoContext(ctx, "opened predator type choice",
		"character_id", char.ID,
		"predator_type", pt.Name,
		"session_id", created.Session.ID,
		"replaced_session_id", created.ReplacedID)

	return &OpenChoiceOutput{
		SessionID:         created.Session.ID,
		View:              session.View(),
		ExpiresAt:         created.Session.ExpiresAt,
		ReplacedSessionID: created.ReplacedID,
	}, nil
}

// SetPoints applies one point assignment. Illegal assignments are returned
// as a Refusal alongside the unchanged view, not as an error.
func (o *orchestrator) SetPoints(ctx context.Context, input *SetPointsInput) (*SetPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	stored, session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := session.SetPoints(input.Group, input.Option, input.Level); err != nil {
		reason := errors.GetReason(err)
		metrics.RecordRefusal(reason)
		slog.DebugContext(ctx, "refused point assignment",
			"session_id", input.SessionID,
			"group", input.Group,
			"option", input.Option,
			"level", input.Level,
			"reason", reason)

		return &SetPointsOutput{
			View:    session.View(),
			Refusal: &Refusal{Reason: reason, Message: err.Error()},
		}, nil
	}

	stored.State = session.Snapshot()
	if _, err := o.sessionRepo.Update(ctx, choicesession.UpdateInput{Session: stored}); err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", input.SessionID)
	}

	return &SetPointsOutput{View: session.View()}, nil
}

// GetSession returns the current view of an open session
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	stored, session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		SessionID:   stored.ID,
		CharacterID: stored.CharacterID,
		View:        session.View(),
		ExpiresAt:   stored.ExpiresAt,
	}, nil
}

// CommitChoice confirms the session's predator type into the character and
// closes the session. A rejected commit leaves both untouched.
func (o *orchestrator) CommitChoice(ctx context.Context, input *CommitChoiceInput) (*CommitChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	stored, session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, stored.CharacterID)
	if err != nil {
		return nil, err
	}

	updated, result, err := cascade.Commit(char, session.Choice(), session, input.Specialty, input.SubChoice)
	if err != nil {
		metrics.RecordCommit(metrics.ResultRejected)
		slog.WarnContext(ctx, "rejected predator type commit",
			"character_id", char.ID,
			"session_id", stored.ID,
			"predator_type", session.Choice().Name,
			"specialty", input.Specialty,
			"sub_choice", input.SubChoice,
			"error", err.Error())
		return nil, rejection(err)
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", char.ID)
	}

	if _, err := o.sessionRepo.Delete(ctx, choicesession.DeleteInput{ID: stored.ID}); err != nil && !errors.IsNotFound(err) {
		slog.ErrorContext(ctx, "failed to close committed choice session",
			"session_id", stored.ID,
			"error", err.Error())
	}

	metrics.RecordCommit(metrics.ResultCommitted)
	if result.SubChoiceChanged && result.PreviousSubChoice != "" {
		metrics.RecordCascade()
	}

	if err := o.publisher.PredatorTypeCommitted(ctx, saved.Character, result); err != nil {
		slog.ErrorContext(ctx, "failed to publish predator type commit",
			"character_id", char.ID,
			"error", err.Error())
	}

	return &CommitChoiceOutput{Character: saved.Character, Result: result}, nil
}

// CancelChoice discards a session without touching the character
func (o *orchestrator) CancelChoice(ctx context.Context, input *CancelChoiceInput) (*CancelChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, choicesession.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "cancelled predator type choice", "session_id", input.SessionID)

	return &CancelChoiceOutput{}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*vtm.Character, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// loadSession reads a stored session and rebuilds its allocation table
func (o *orchestrator) loadSession(
	ctx context.Context,
	id string,
) (*choicesession.ChoiceSession, *allocation.Session, error) {
	out, err := o.sessionRepo.Get(ctx, choicesession.GetInput{ID: id})
	if err != nil {
		return nil, nil, err
	}
	stored := out.Session

	pt, err := o.catalog.Get(stored.State.Choice)
	if err != nil {
		return nil, nil, errors.DataLossf("session %s refers to unknown predator type %s", id, stored.State.Choice)
	}

	session, err := allocation.Restore(pt, stored.State)
	if err != nil {
		return nil, nil, errors.DataLossf("session %s: %v", id, err)
	}

	return stored, session, nil
}

// commitFields names the request field each commit rejection is about.
// Allocation refusals are about the session.
var commitFields = map[string]string{
	cascade.ReasonUnresolvedSpecialty: "specialty",
	cascade.ReasonUnresolvedSubChoice: "sub_choice",
}

// rejection converts a commit error into an InvalidArgument carrying the
// reason and any suggestion
func rejection(err error) error {
	if stderrors.Is(err, cascade.ErrNilCharacter) {
		return errors.Internal(err.Error())
	}

	field, ok := commitFields[errors.GetReason(err)]
	if !ok {
		field = "session_id"
	}
	return errors.NewValidationBuilder().Refusal(field, err).Build()
}

package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/services/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements CharacterServiceServer
type CharacterHandler struct {
	service character.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{service: cfg.CharacterService}, nil
}

var _ CharacterServiceServer = (*CharacterHandler)(nil)

type createCharacterRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Clan     string `json:"clan"`
}

type characterRequest struct {
	CharacterID string `json:"character_id"`
}

type listCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

type updateDisciplinesRequest struct {
	CharacterID string       `json:"character_id"`
	Disciplines []vtm.Power  `json:"disciplines"`
	Rituals     []vtm.Ritual `json:"rituals"`
}

type characterResponse struct {
	Character *vtm.Character `json:"character"`
}

type listCharactersResponse struct {
	Characters []*vtm.Character `json:"characters"`
}

type deleteCharacterResponse struct {
	ClosedSessionID string `json:"closed_session_id,omitempty"`
}

// CreateCharacter creates a character
func (h *CharacterHandler) CreateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createCharacterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateCharacter(ctx, &character.CreateCharacterInput{
		PlayerID: in.PlayerID,
		Name:     in.Name,
		Clan:     in.Clan,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// GetCharacter retrieves a character
func (h *CharacterHandler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in characterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.service.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: in.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// ListCharacters lists a player's characters
func (h *CharacterHandler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listCharactersRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.service.ListCharacters(ctx, &character.ListCharactersInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := listCharactersResponse{Characters: out.Characters}
	if resp.Characters == nil {
		resp.Characters = []*vtm.Character{}
	}

	return respond(resp)
}

// DeleteCharacter deletes a character
func (h *CharacterHandler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in characterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.service.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: in.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(deleteCharacterResponse{ClosedSessionID: out.ClosedSessionID})
}

// UpdateDisciplines replaces a character's acquired powers and rituals
func (h *CharacterHandler) UpdateDisciplines(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateDisciplinesRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.service.UpdateDisciplines(ctx, &character.UpdateDisciplinesInput{
		CharacterID: in.CharacterID,
		Disciplines: in.Disciplines,
		Rituals:     in.Rituals,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

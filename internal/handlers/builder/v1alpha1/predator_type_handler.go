package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/orchestrators/predatortype"
)

// PredatorTypeHandlerConfig holds dependencies for the predator type handler
type PredatorTypeHandlerConfig struct {
	PredatorTypeService predatortype.Service
}

// Validate ensures all required dependencies are present
func (c *PredatorTypeHandlerConfig) Validate() error {
	if c.PredatorTypeService == nil {
		return errors.InvalidArgument("predator type service is required")
	}
	return nil
}

// PredatorTypeHandler implements PredatorTypeServiceServer
type PredatorTypeHandler struct {
	service predatortype.Service
}

// NewPredatorTypeHandler creates a new predator type handler
func NewPredatorTypeHandler(cfg *PredatorTypeHandlerConfig) (*PredatorTypeHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PredatorTypeHandler{service: cfg.PredatorTypeService}, nil
}

var _ PredatorTypeServiceServer = (*PredatorTypeHandler)(nil)

type listPredatorTypesRequest struct {
	CharacterID string `json:"character_id"`
	Category    string `json:"category"`
}

type predatorTypeListing struct {
	*vtm.PredatorType
	Available bool `json:"available"`
}

type listPredatorTypesResponse struct {
	PredatorTypes []predatorTypeListing `json:"predator_types"`
}

type openChoiceRequest struct {
	CharacterID  string `json:"character_id"`
	PredatorType string `json:"predator_type"`
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type sessionResponse struct {
	SessionID         string                 `json:"session_id"`
	CharacterID       string                 `json:"character_id,omitempty"`
	ReplacedSessionID string                 `json:"replaced_session_id,omitempty"`
	ExpiresAt         int64                  `json:"expires_at"`
	View              allocation.SessionView `json:"view"`
}

type setPointsRequest struct {
	SessionID string `json:"session_id"`
	Group     string `json:"group"`
	Option    string `json:"option"`
	Level     int    `json:"level"`
}

type refusal struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type setPointsResponse struct {
	View    allocation.SessionView `json:"view"`
	Refusal *refusal               `json:"refusal,omitempty"`
}

type commitChoiceRequest struct {
	SessionID string `json:"session_id"`
	Specialty string `json:"specialty"`
	SubChoice string `json:"sub_choice"`
}

type cascadeResult struct {
	SubChoiceChanged   bool         `json:"sub_choice_changed"`
	PreviousSubChoice  string       `json:"previous_sub_choice,omitempty"`
	ClearedDisciplines []vtm.Power  `json:"cleared_disciplines"`
	ClearedRituals     []vtm.Ritual `json:"cleared_rituals"`
}

type commitChoiceResponse struct {
	Character *vtm.Character `json:"character"`
	Cascade   cascadeResult  `json:"cascade"`
}

// ListPredatorTypes lists the catalog, marking clan exclusions when a
// character is given
func (h *PredatorTypeHandler) ListPredatorTypes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listPredatorTypesRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListPredatorTypes(ctx, &predatortype.ListPredatorTypesInput{
		CharacterID: in.CharacterID,
		Category:    in.Category,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := listPredatorTypesResponse{PredatorTypes: make([]predatorTypeListing, 0, len(out.PredatorTypes))}
	for _, l := range out.PredatorTypes {
		resp.PredatorTypes = append(resp.PredatorTypes, predatorTypeListing{
			PredatorType: l.PredatorType,
			Available:    l.Available,
		})
	}

	return respond(resp)
}

// OpenChoice opens an allocation session for a character
func (h *PredatorTypeHandler) OpenChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in openChoiceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if in.PredatorType == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("predator_type is required"))
	}

	out, err := h.service.OpenChoice(ctx, &predatortype.OpenChoiceInput{
		CharacterID:  in.CharacterID,
		PredatorType: in.PredatorType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sessionResponse{
		SessionID:         out.SessionID,
		CharacterID:       in.CharacterID,
		ReplacedSessionID: out.ReplacedSessionID,
		ExpiresAt:         out.ExpiresAt.Unix(),
		View:              out.View,
	})
}

// SetPoints assigns points to one option. A refused assignment is a
// successful call carrying a refusal.
func (h *PredatorTypeHandler) SetPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in setPointsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.SetPoints(ctx, &predatortype.SetPointsInput{
		SessionID: in.SessionID,
		Group:     in.Group,
		Option:    in.Option,
		Level:     in.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := setPointsResponse{View: out.View}
	if out.Refusal != nil {
		resp.Refusal = &refusal{Reason: out.Refusal.Reason, Message: out.Refusal.Message}
	}

	return respond(resp)
}

// GetSession returns the current view of a session
func (h *PredatorTypeHandler) GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in sessionRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.GetSession(ctx, &predatortype.GetSessionInput{SessionID: in.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sessionResponse{
		SessionID:   out.SessionID,
		CharacterID: out.CharacterID,
		ExpiresAt:   out.ExpiresAt.Unix(),
		View:        out.View,
	})
}

// CommitChoice confirms the session into the character
func (h *PredatorTypeHandler) CommitChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in commitChoiceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.CommitChoice(ctx, &predatortype.CommitChoiceInput{
		SessionID: in.SessionID,
		Specialty: in.Specialty,
		SubChoice: in.SubChoice,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := commitChoiceResponse{
		Character: out.Character,
		Cascade: cascadeResult{
			ClearedDisciplines: []vtm.Power{},
			ClearedRituals:     []vtm.Ritual{},
		},
	}
	if out.Result != nil {
		resp.Cascade.SubChoiceChanged = out.Result.SubChoiceChanged
		resp.Cascade.PreviousSubChoice = out.Result.PreviousSubChoice
		if out.Result.ClearedDisciplines != nil {
			resp.Cascade.ClearedDisciplines = out.Result.ClearedDisciplines
		}
		if out.Result.ClearedRituals != nil {
			resp.Cascade.ClearedRituals = out.Result.ClearedRituals
		}
	}

	return respond(resp)
}

// CancelChoice discards a session
func (h *PredatorTypeHandler) CancelChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in sessionRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.service.CancelChoice(ctx, &predatortype.CancelChoiceInput{SessionID: in.SessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

func respond(v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

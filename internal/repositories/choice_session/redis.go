package choicesession

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vtm-builder/internal/redis"
)

const (
	// Key patterns: choice_session:{id}, choice_session:character:{character_id}
	sessionKeyPrefix   = "choice_session:"
	characterKeyPrefix = "choice_session:character:"

	// DefaultTTL is how long an untouched session stays open
	DefaultTTL = 30 * time.Minute

	// Error messages
	errSessionNil       = "session cannot be nil"
	errSessionIDEmpty   = "session ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL overrides DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for choice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	characterKey := characterKeyPrefix + input.CharacterID
	replacedID, err := r.client.Get(ctx, characterKey).Result()
	if err != nil && err != redisclient.Nil {
		return nil, errors.Wrapf(err, "failed to check existing session")
	}

	// A mapping can outlive its session when the clock expired it first
	if replacedID != "" && replacedID != input.ID {
		if _, err := r.load(ctx, replacedID); errors.IsNotFound(err) {
			replacedID = ""
		}
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	session := &ChoiceSession{
		ID:          input.ID,
		CharacterID: input.CharacterID,
		State:       input.State,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	pipe := r.client.TxPipeline()
	if replacedID != "" && replacedID != input.ID {
		pipe.Del(ctx, sessionKeyPrefix+replacedID)
	}
	pipe.Set(ctx, sessionKeyPrefix+input.ID, data, ttl)
	pipe.Set(ctx, characterKey, input.ID, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store session")
	}

	if replacedID == input.ID {
		replacedID = ""
	}
	if replacedID != "" {
		slog.DebugContext(ctx, "replaced open choice session",
			"character_id", input.CharacterID,
			"old_session_id", replacedID,
			"new_session_id", input.ID)
	}

	return &CreateOutput{Session: session, ReplacedID: replacedID}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) GetByCharacterID(ctx context.Context, input GetByCharacterIDInput) (*GetByCharacterIDOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	id, err := r.client.Get(ctx, characterKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no open choice session for character %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get character session mapping")
	}

	session, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GetByCharacterIDOutput{Session: session}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	remaining := input.Session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return nil, errors.NotFoundf("choice session %s has expired", input.Session.ID)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	// XX keeps an update from resurrecting a session that was deleted
	ok, err := r.client.SetXX(ctx, sessionKeyPrefix+input.Session.ID, data, remaining).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}
	if !ok {
		return nil, errors.NotFoundf("choice session %s not found", input.Session.ID)
	}

	return &UpdateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := r.remove(ctx, session); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*ChoiceSession, error) {
	key := sessionKeyPrefix + id

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("choice session %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var session ChoiceSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis expiry and the injected clock can disagree; the clock wins
	if !r.clock.Now().Before(session.ExpiresAt) {
		if err := r.remove(ctx, &session); err != nil {
			slog.WarnContext(ctx, "failed to clear expired choice session",
				"session_id", id,
				"character_id", session.CharacterID,
				"error", err.Error())
		}
		return nil, errors.NotFoundf("choice session %s has expired", id)
	}

	return &session, nil
}

// remove deletes a session and, when it still points at that session, its
// character mapping
func (r *redisRepository) remove(ctx context.Context, session *ChoiceSession) error {
	characterKey := characterKeyPrefix + session.CharacterID
	current, err := r.client.Get(ctx, characterKey).Result()
	if err != nil && err != redisclient.Nil {
		return errors.Wrapf(err, "failed to get character session mapping")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+session.ID)
	if current == session.ID {
		pipe.Del(ctx, characterKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete session keys")
	}
	return nil
}

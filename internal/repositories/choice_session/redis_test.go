package choicesession_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/pkg/clock"
	choicesession "github.com/KirkDiggler/vtm-builder/internal/repositories/choice_session"
	"github.com/KirkDiggler/vtm-builder/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Fixed
	mr    *miniredis.Miniredis
	repo  choicesession.Repository
	ctx   context.Context
	state allocation.State
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC))

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := choicesession.NewRedisRepository(&choicesession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.state = allocation.State{
		Choice: "Osiris",
		Levels: map[string]map[string]int{"Followers": {"Fame": 2}},
	}
}

func (s *RedisRepositoryTestSuite) create(id, characterID string) *choicesession.CreateOutput {
	out, err := s.repo.Create(s.ctx, choicesession.CreateInput{
		ID:          id,
		CharacterID: characterID,
		State:       s.state,
	})
	s.Require().NoError(err)
	return out
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := choicesession.NewRedisRepository(&choicesession.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = choicesession.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	out := s.create("session_1", "char_1")
	s.Equal(s.clock.Now().Add(choicesession.DefaultTTL), out.Session.ExpiresAt)
	s.Empty(out.ReplacedID)

	got, err := s.repo.Get(s.ctx, choicesession.GetInput{ID: "session_1"})
	s.Require().NoError(err)
	s.Equal("char_1", got.Session.CharacterID)
	s.Equal(s.state, got.Session.State)

	byChar, err := s.repo.GetByCharacterID(s.ctx, choicesession.GetByCharacterIDInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("session_1", byChar.Session.ID)

	s.Equal(choicesession.DefaultTTL, s.mr.TTL("choice_session:session_1"))
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesPreviousSession() {
	s.create("session_1", "char_1")
	out := s.create("session_2", "char_1")
	s.Equal("session_1", out.ReplacedID)

	_, err := s.repo.Get(s.ctx, choicesession.GetInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))

	byChar, err := s.repo.GetByCharacterID(s.ctx, choicesession.GetByCharacterIDInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("session_2", byChar.Session.ID)
}

func (s *RedisRepositoryTestSuite) TestExpiredSessionIsNotFound() {
	s.create("session_1", "char_1")
	s.clock.Advance(choicesession.DefaultTTL)

	_, err := s.repo.Get(s.ctx, choicesession.GetInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("choice_session:session_1"))
	s.False(s.mr.Exists("choice_session:character:char_1"))

	_, err = s.repo.GetByCharacterID(s.ctx, choicesession.GetByCharacterIDInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))

	out := s.create("session_2", "char_1")
	s.Empty(out.ReplacedID)
}

func (s *RedisRepositoryTestSuite) TestCreateOverExpiredSessionReplacesNothing() {
	s.create("session_1", "char_1")
	s.clock.Advance(choicesession.DefaultTTL + time.Minute)

	out := s.create("session_2", "char_1")
	s.Empty(out.ReplacedID)
	s.False(s.mr.Exists("choice_session:session_1"))

	byChar, err := s.repo.GetByCharacterID(s.ctx, choicesession.GetByCharacterIDInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("session_2", byChar.Session.ID)
}

func (s *RedisRepositoryTestSuite) TestExpiryKeepsNewerMapping() {
	s.create("session_1", "char_1")
	s.Require().NoError(s.mr.Set("choice_session:character:char_1", "session_9"))
	s.clock.Advance(choicesession.DefaultTTL)

	_, err := s.repo.Get(s.ctx, choicesession.GetInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("choice_session:session_1"))
	s.True(s.mr.Exists("choice_session:character:char_1"))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsExpiry() {
	out := s.create("session_1", "char_1")
	s.clock.Advance(10 * time.Minute)

	session := out.Session
	session.State = allocation.State{Choice: "Osiris", Levels: map[string]map[string]int{"Followers": {"Herd": 3}}}
	_, err := s.repo.Update(s.ctx, choicesession.UpdateInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, choicesession.GetInput{ID: "session_1"})
	s.Require().NoError(err)
	s.Equal(3, got.Session.State.Levels["Followers"]["Herd"])
	s.Equal(out.Session.ExpiresAt, got.Session.ExpiresAt)
	s.Equal(20*time.Minute, s.mr.TTL("choice_session:session_1"))
}

func (s *RedisRepositoryTestSuite) TestUpdateAfterDeleteIsNotFound() {
	out := s.create("session_1", "char_1")
	_, err := s.repo.Delete(s.ctx, choicesession.DeleteInput{ID: "session_1"})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, choicesession.UpdateInput{Session: out.Session})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("choice_session:session_1"))
}

func (s *RedisRepositoryTestSuite) TestUpdateExpired() {
	out := s.create("session_1", "char_1")
	s.clock.Advance(time.Hour)

	_, err := s.repo.Update(s.ctx, choicesession.UpdateInput{Session: out.Session})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.create("session_1", "char_1")

	_, err := s.repo.Delete(s.ctx, choicesession.DeleteInput{ID: "session_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("choice_session:character:char_1"))

	_, err = s.repo.Delete(s.ctx, choicesession.DeleteInput{ID: "session_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.Create(s.ctx, choicesession.CreateInput{CharacterID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, choicesession.CreateInput{ID: "session_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, choicesession.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.GetByCharacterID(s.ctx, choicesession.GetByCharacterIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestStorageFailure() {
	db, mock := redismock.NewClientMock()
	repo, err := choicesession.NewRedisRepository(&choicesession.Config{Client: db, Clock: s.clock})
	s.Require().NoError(err)

	mock.ExpectGet("choice_session:character:char_1").SetErr(stderrors.New("connection refused"))

	_, err = repo.Create(s.ctx, choicesession.CreateInput{ID: "session_1", CharacterID: "char_1"})
	s.True(errors.IsInternal(err))
	s.NoError(mock.ExpectationsWereMet())
}

func (s *RedisRepositoryTestSuite) TestCorruptPayload() {
	client, _ := testutils.CreateTestRedisClientWithData(s.T(), func(mr *miniredis.Miniredis) {
		s.Require().NoError(mr.Set("choice_session:session_bad", "{not json"))
	})
	repo, err := choicesession.NewRedisRepository(&choicesession.Config{Client: client, Clock: s.clock})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx, choicesession.GetInput{ID: "session_bad"})
	s.True(errors.IsInternal(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

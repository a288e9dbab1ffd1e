package events_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/events"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/testutils"
)

type PublisherTestSuite struct {
	suite.Suite

	bus       *rpgevents.Bus
	publisher *events.BusPublisher
	received  map[string][]rpgevents.Event
}

func (s *PublisherTestSuite) SetupTest() {
	s.bus = rpgevents.NewBus()
	s.publisher = events.NewBusPublisher(s.bus)
	s.received = make(map[string][]rpgevents.Event)

	for _, eventType := range []string{events.EventPredatorTypeCommitted, events.EventPredatorTypeCascade} {
		eventType := eventType
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e rpgevents.Event) error {
			s.received[eventType] = append(s.received[eventType], e)
			return nil
		})
	}
	events.SubscribeLogging(s.bus)
}

func (s *PublisherTestSuite) TestCommitWithoutCascade() {
	char := testutils.CreateTestCharacterWithCelerity("player_1")

	err := s.publisher.PredatorTypeCommitted(context.Background(), char, &cascade.Result{})
	s.Require().NoError(err)

	s.Require().Len(s.received[events.EventPredatorTypeCommitted], 1)
	s.Empty(s.received[events.EventPredatorTypeCascade])

	e := s.received[events.EventPredatorTypeCommitted][0]
	s.Equal(char.ID, e.Source().GetID())
	s.Equal("character", e.Source().GetType())
	predatorType, ok := e.Context().Get(events.KeyPredatorType)
	s.True(ok)
	s.Equal("Alleycat", predatorType)
}

func (s *PublisherTestSuite) TestCommitWithCascade() {
	char := testutils.CreateTestCharacter("player_1")
	char.PredatorType = vtm.PredatorTypeRecord{Name: "Alleycat", SubChoice: vtm.DisciplinePotence}

	err := s.publisher.PredatorTypeCommitted(context.Background(), char, &cascade.Result{
		PreviousSubChoice:  vtm.DisciplineCelerity,
		SubChoiceChanged:   true,
		ClearedDisciplines: []vtm.Power{{Name: "Swift Steps", Discipline: vtm.DisciplineCelerity, Level: 1}},
	})
	s.Require().NoError(err)

	s.Require().Len(s.received[events.EventPredatorTypeCascade], 1)
	e := s.received[events.EventPredatorTypeCascade][0]

	previous, _ := e.Context().Get(events.KeyPreviousSubChoice)
	s.Equal(vtm.DisciplineCelerity, previous)
	cleared, _ := e.Context().Get(events.KeyClearedDisciplines)
	s.Equal(1, cleared)
}

func (s *PublisherTestSuite) TestFirstCommitIsNotACascade() {
	char := testutils.CreateTestCharacterWithCelerity("player_1")

	err := s.publisher.PredatorTypeCommitted(context.Background(), char, &cascade.Result{
		SubChoiceChanged: true,
	})
	s.Require().NoError(err)

	s.Len(s.received[events.EventPredatorTypeCommitted], 1)
	s.Empty(s.received[events.EventPredatorTypeCascade])
}

func (s *PublisherTestSuite) TestRequiresCharacterAndResult() {
	err := s.publisher.PredatorTypeCommitted(context.Background(), nil, &cascade.Result{})
	s.True(errors.IsInvalidArgument(err))

	err = s.publisher.PredatorTypeCommitted(context.Background(), testutils.CreateTestCharacter("p"), nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

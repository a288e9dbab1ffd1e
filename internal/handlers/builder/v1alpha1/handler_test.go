package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vtm-builder/internal/allocation"
	"github.com/KirkDiggler/vtm-builder/internal/cascade"
	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/handlers/builder/v1alpha1"
	"github.com/KirkDiggler/vtm-builder/internal/orchestrators/predatortype"
	predatortypemock "github.com/KirkDiggler/vtm-builder/internal/orchestrators/predatortype/mock"
	"github.com/KirkDiggler/vtm-builder/internal/services/character"
	charactermock "github.com/KirkDiggler/vtm-builder/internal/services/character/mock"
	"github.com/KirkDiggler/vtm-builder/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPredatorType *predatortypemock.MockService
	mockCharacter    *charactermock.MockService
	server           *grpc.Server
	conn             *grpc.ClientConn
	ctx              context.Context
}

func (s *HandlerTestSuite) TestReflectionListsButCannotDescribe() {
	stream, err := reflectionpb.NewServerReflectionClient(s.conn).ServerReflectionInfo(s.ctx)
	s.Require().NoError(err)
	defer func() {
		_ = stream.CloseSend()
	}()

	s.Require().NoError(stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
	}))
	resp, err := stream.Recv()
	s.Require().NoError(err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	s.Contains(names, v1alpha1.PredatorTypeServiceName)
	s.Contains(names, v1alpha1.CharacterServiceName)

	s.Require().NoError(stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: v1alpha1.PredatorTypeServiceName,
		},
	}))
	resp, err = stream.Recv()
	s.Require().NoError(err)
	s.Require().NotNil(resp.GetErrorResponse())
	s.Equal(int32(codes.NotFound), resp.GetErrorResponse().GetErrorCode())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPredatorType = predatortypemock.NewMockService(s.ctrl)
	s.mockCharacter = charactermock.NewMockService(s.ctrl)

	predatorTypeHandler, err := v1alpha1.NewPredatorTypeHandler(&v1alpha1.PredatorTypeHandlerConfig{
		PredatorTypeService: s.mockPredatorType,
	})
	s.Require().NoError(err)
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: s.mockCharacter,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterPredatorTypeServiceServer(s.server, predatorTypeHandler)
	v1alpha1.RegisterCharacterServiceServer(s.server, characterHandler)
	reflection.Register(s.server)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.ctx = context.Background()
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) invoke(service, method string, req map[string]any) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	s.Require().NoError(err)

	out := &structpb.Struct{}
	err = s.conn.Invoke(s.ctx, v1alpha1.FullMethod(service, method), in, out)
	return out, err
}

func (s *HandlerTestSuite) view() allocation.SessionView {
	session := allocation.Open(testutils.CreateTestPredatorType())
	s.Require().NoError(session.SetPoints("Criminal Contacts", "Contacts", 2))
	return session.View()
}

func (s *HandlerTestSuite) TestNewHandlersRequireServices() {
	_, err := v1alpha1.NewPredatorTypeHandler(&v1alpha1.PredatorTypeHandlerConfig{})
	s.Error(err)
	_, err = v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestListPredatorTypes() {
	s.mockPredatorType.EXPECT().
		ListPredatorTypes(gomock.Any(), &predatortype.ListPredatorTypesInput{
			CharacterID: "char_1",
			Category:    vtm.CategoryViolent,
		}).
		Return(&predatortype.ListPredatorTypesOutput{
			PredatorTypes: []predatortype.Listing{
				{PredatorType: testutils.CreateTestPredatorType(), Available: true},
			},
		}, nil)

	out, err := s.invoke(v1alpha1.PredatorTypeServiceName, "ListPredatorTypes", map[string]any{
		"character_id": "char_1",
		"category":     vtm.CategoryViolent,
	})
	s.Require().NoError(err)

	listings := out.GetFields()["predator_types"].GetListValue().GetValues()
	s.Require().Len(listings, 1)
	first := listings[0].GetStructValue().GetFields()
	s.Equal("Alleycat", first["name"].GetStringValue())
	s.True(first["available"].GetBoolValue())
	s.Len(first["option_groups"].GetListValue().GetValues(), 1)
}

func (s *HandlerTestSuite) TestOpenChoice() {
	expiresAt := time.Unix(1700001800, 0)
	s.mockPredatorType.EXPECT().
		OpenChoice(gomock.Any(), &predatortype.OpenChoiceInput{CharacterID: "char_1", PredatorType: "Alleycat"}).
		Return(&predatortype.OpenChoiceOutput{
			SessionID: "session_1",
			View:      allocation.Open(testutils.CreateTestPredatorType()).View(),
			ExpiresAt: expiresAt,
		}, nil)

	out, err := s.invoke(v1alpha1.PredatorTypeServiceName, "OpenChoice", map[string]any{
		"character_id":  "char_1",
		"predator_type": "Alleycat",
	})
	s.Require().NoError(err)

	fields := out.GetFields()
	s.Equal("session_1", fields["session_id"].GetStringValue())
	s.Equal(float64(expiresAt.Unix()), fields["expires_at"].GetNumberValue())
	groups := fields["view"].GetStructValue().GetFields()["groups"].GetListValue().GetValues()
	s.Require().Len(groups, 1)
	s.Equal(float64(3), groups[0].GetStructValue().GetFields()["remaining"].GetNumberValue())
}

func (s *HandlerTestSuite) TestOpenChoiceClanExcluded() {
	s.mockPredatorType.EXPECT().
		OpenChoice(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("clan Ventrue cannot take the Farmer predator type").
			WithReason(predatortype.ReasonClanExcluded))

	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "OpenChoice", map[string]any{
		"character_id":  "char_1",
		"predator_type": "Farmer",
	})
	s.Require().Error(err)

	st := status.Convert(err)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal(predatortype.ReasonClanExcluded, info.Reason)
}

func (s *HandlerTestSuite) TestOpenChoiceRequiresFields() {
	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "OpenChoice", map[string]any{"character_id": "char_1"})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSetPointsApplied() {
	s.mockPredatorType.EXPECT().
		SetPoints(gomock.Any(), &predatortype.SetPointsInput{
			SessionID: "session_1",
			Group:     "Criminal Contacts",
			Option:    "Contacts",
			Level:     2,
		}).
		Return(&predatortype.SetPointsOutput{View: s.view()}, nil)

	out, err := s.invoke(v1alpha1.PredatorTypeServiceName, "SetPoints", map[string]any{
		"session_id": "session_1",
		"group":      "Criminal Contacts",
		"option":     "Contacts",
		"level":      2,
	})
	s.Require().NoError(err)
	_, refused := out.GetFields()["refusal"]
	s.False(refused)
}

func (s *HandlerTestSuite) TestSetPointsRefusal() {
	s.mockPredatorType.EXPECT().
		SetPoints(gomock.Any(), gomock.Any()).
		Return(&predatortype.SetPointsOutput{
			View: s.view(),
			Refusal: &predatortype.Refusal{
				Reason:  allocation.ReasonOverBudget,
				Message: "Allies: 2 points exceed the 1 remaining",
			},
		}, nil)

	out, err := s.invoke(v1alpha1.PredatorTypeServiceName, "SetPoints", map[string]any{
		"session_id": "session_1",
		"group":      "Criminal Contacts",
		"option":     "Allies",
		"level":      2,
	})
	s.Require().NoError(err)

	refusal := out.GetFields()["refusal"].GetStructValue().GetFields()
	s.Equal(allocation.ReasonOverBudget, refusal["reason"].GetStringValue())
	s.NotEmpty(refusal["message"].GetStringValue())
}

func (s *HandlerTestSuite) TestSetPointsRejectsFractionalLevel() {
	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "SetPoints", map[string]any{
		"session_id": "session_1",
		"group":      "Criminal Contacts",
		"option":     "Allies",
		"level":      1.5,
	})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetSessionNotFound() {
	s.mockPredatorType.EXPECT().
		GetSession(gomock.Any(), &predatortype.GetSessionInput{SessionID: "expired"}).
		Return(nil, errors.NotFound("session expired not found"))

	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "GetSession", map[string]any{"session_id": "expired"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestCommitChoice() {
	char := testutils.CreateTestCharacter("player_1")
	char.PredatorType = vtm.PredatorTypeRecord{Name: "Alleycat", SubChoice: vtm.DisciplinePotence}
	s.mockPredatorType.EXPECT().
		CommitChoice(gomock.Any(), &predatortype.CommitChoiceInput{
			SessionID: "session_1",
			Specialty: "brawl_Grappling",
			SubChoice: "potence",
		}).
		Return(&predatortype.CommitChoiceOutput{
			Character: char,
			Result: &cascade.Result{
				PreviousSubChoice: vtm.DisciplineCelerity,
				SubChoiceChanged:  true,
				ClearedDisciplines: []vtm.Power{
					{Name: "Swift Steps", Discipline: vtm.DisciplineCelerity, Level: 1},
				},
			},
		}, nil)

	out, err := s.invoke(v1alpha1.PredatorTypeServiceName, "CommitChoice", map[string]any{
		"session_id": "session_1",
		"specialty":  "brawl_Grappling",
		"sub_choice": "potence",
	})
	s.Require().NoError(err)

	cascaded := out.GetFields()["cascade"].GetStructValue().GetFields()
	s.True(cascaded["sub_choice_changed"].GetBoolValue())
	s.Equal(vtm.DisciplineCelerity, cascaded["previous_sub_choice"].GetStringValue())
	s.Len(cascaded["cleared_disciplines"].GetListValue().GetValues(), 1)
	s.NotNil(cascaded["cleared_rituals"].GetListValue())

	record := out.GetFields()["character"].GetStructValue().GetFields()["predator_type"].GetStructValue().GetFields()
	s.Equal(vtm.DisciplinePotence, record["sub_choice"].GetStringValue())
}

func (s *HandlerTestSuite) TestCommitChoiceRejected() {
	s.mockPredatorType.EXPECT().
		CommitChoice(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument(`sub-choice "celerty" is not offered by Alleycat`).
			WithReason(cascade.ReasonUnresolvedSubChoice).
			WithMeta("suggestion", vtm.DisciplineCelerity))

	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "CommitChoice", map[string]any{
		"session_id": "session_1",
		"specialty":  "brawl_Grappling",
		"sub_choice": "celerty",
	})
	s.Require().Error(err)

	st := status.Convert(err)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Require().Len(st.Details(), 1)
	info := st.Details()[0].(*errdetails.ErrorInfo)
	s.Equal(cascade.ReasonUnresolvedSubChoice, info.Reason)
	s.Equal(vtm.DisciplineCelerity, info.Metadata["suggestion"])
}

func (s *HandlerTestSuite) TestCancelChoice() {
	s.mockPredatorType.EXPECT().
		CancelChoice(gomock.Any(), &predatortype.CancelChoiceInput{SessionID: "session_1"}).
		Return(&predatortype.CancelChoiceOutput{}, nil)

	_, err := s.invoke(v1alpha1.PredatorTypeServiceName, "CancelChoice", map[string]any{"session_id": "session_1"})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	char := testutils.CreateTestCharacter("player_1")
	s.mockCharacter.EXPECT().
		CreateCharacter(gomock.Any(), &character.CreateCharacterInput{
			PlayerID: "player_1",
			Name:     testutils.TestCharacterName,
			Clan:     vtm.ClanBrujah,
		}).
		Return(&character.CreateCharacterOutput{Character: char}, nil)

	out, err := s.invoke(v1alpha1.CharacterServiceName, "CreateCharacter", map[string]any{
		"player_id": "player_1",
		"name":      testutils.TestCharacterName,
		"clan":      vtm.ClanBrujah,
	})
	s.Require().NoError(err)

	fields := out.GetFields()["character"].GetStructValue().GetFields()
	s.Equal(char.ID, fields["id"].GetStringValue())
	s.Equal(vtm.ClanBrujah, fields["clan"].GetStringValue())
}

func (s *HandlerTestSuite) TestListCharactersEmpty() {
	s.mockCharacter.EXPECT().
		ListCharacters(gomock.Any(), &character.ListCharactersInput{PlayerID: "player_1"}).
		Return(&character.ListCharactersOutput{}, nil)

	out, err := s.invoke(v1alpha1.CharacterServiceName, "ListCharacters", map[string]any{"player_id": "player_1"})
	s.Require().NoError(err)
	s.NotNil(out.GetFields()["characters"].GetListValue())
	s.Empty(out.GetFields()["characters"].GetListValue().GetValues())
}

func (s *HandlerTestSuite) TestUpdateDisciplines() {
	char := testutils.CreateTestCharacterWithCelerity("player_1")
	s.mockCharacter.EXPECT().
		UpdateDisciplines(gomock.Any(), &character.UpdateDisciplinesInput{
			CharacterID: char.ID,
			Disciplines: []vtm.Power{{Name: "Swift Steps", Discipline: vtm.DisciplineCelerity, Level: 1}},
		}).
		Return(&character.UpdateDisciplinesOutput{Character: char}, nil)

	_, err := s.invoke(v1alpha1.CharacterServiceName, "UpdateDisciplines", map[string]any{
		"character_id": char.ID,
		"disciplines": []any{
			map[string]any{"name": "Swift Steps", "discipline": vtm.DisciplineCelerity, "level": 1},
		},
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestDeleteCharacterStorageUnavailable() {
	s.mockCharacter.EXPECT().
		DeleteCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.invoke(v1alpha1.CharacterServiceName, "DeleteCharacter", map[string]any{"character_id": "char_1"})
	s.Require().Error(err)
	s.Equal(codes.Unavailable, status.Code(err))
}

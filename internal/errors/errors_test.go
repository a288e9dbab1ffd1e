package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "123").
		WithMeta("player_id", "456")

	s.Assert().Equal("123", err.Meta["character_id"])
	s.Assert().Equal("456", err.Meta["player_id"])

	err2 := errors.InvalidArgument("discipline not offered").
		WithSuggestion("celerity").
		WithSuggestion("")

	s.Assert().Equal("celerity", errors.GetSuggestion(err2))
	s.Assert().Empty(errors.GetSuggestion(errors.InvalidArgument("no hint")))
}

func (s *ErrorsTestSuite) TestWithReason() {
	err := errors.InvalidArgument("specialty not offered").WithReason("unresolved_specialty")
	wrapped := errors.Wrap(err, "commit rejected")

	s.Assert().Equal("unresolved_specialty", errors.GetReason(err))
	s.Assert().Equal("unresolved_specialty", errors.GetReason(wrapped))
	s.Assert().Empty(errors.GetReason(fmt.Errorf("plain")))
	s.Assert().Empty(errors.GetReason(nil))
}

type overBudget struct{}

func (overBudget) Error() string  { return "Herd/Fame: over budget" }
func (overBudget) Reason() string { return "over_budget" }

type misspelled struct{}

func (misspelled) Error() string      { return "discipline \"celerty\" is not offered" }
func (misspelled) Reason() string     { return "unresolved_sub_choice" }
func (misspelled) DidYouMean() string { return "celerity" }

func (s *ErrorsTestSuite) TestReasonFromRefusal() {
	s.Assert().Equal("over_budget", errors.GetReason(overBudget{}))
	s.Assert().Equal("over_budget", errors.GetReason(fmt.Errorf("set points: %w", overBudget{})))
	s.Assert().Empty(errors.GetSuggestion(overBudget{}))

	s.Assert().Equal("unresolved_sub_choice", errors.GetReason(misspelled{}))
	s.Assert().Equal("celerity", errors.GetSuggestion(misspelled{}))
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "character not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("character not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.FailedPrecondition("over cap").WithReason("over_cap")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "corrupt allocation")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("corrupt allocation", wrapped.Message)
	s.Assert().Equal("over_cap", wrapped.Meta[errors.MetaKeyReason])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))

	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("clan excluded")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExistsf("character %s", "c1")))
	s.Assert().True(errors.IsInternal(errors.Internalf("encode %d", 1)))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.InvalidArgument("specialty not offered").
		WithReason("unresolved_specialty").
		WithMeta("specialty", "Stealth_Crowds")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
	s.Assert().Equal("specialty not offered", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Assert().Equal("unresolved_specialty", info.GetReason())
	s.Assert().Equal(errors.ErrorDomain, info.GetDomain())
	s.Assert().Equal("Stealth_Crowds", info.GetMetadata()["specialty"])

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Assert().Equal("unresolved_specialty", errors.GetReason(back))
	s.Assert().Equal("Stealth_Crowds", errors.GetMeta(back)["specialty"])
}

func (s *ErrorsTestSuite) TestGRPCConversionCarriesRefusal() {
	err := errors.NewValidationBuilder().Refusal("sub_choice", misspelled{}).Build()

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
	s.Require().Len(st.Details(), 1)
	info := st.Details()[0].(*errdetails.ErrorInfo)
	s.Assert().Equal("unresolved_sub_choice", info.GetReason())
	s.Assert().Equal("celerity", info.GetMetadata()[errors.MetaKeySuggestion])
	s.Assert().Equal(`discipline "celerty" is not offered`, info.GetMetadata()["field.sub_choice"])

	back := errors.FromGRPCError(st.Err())
	s.Assert().True(errors.IsInvalidArgument(back))
	s.Assert().Equal("unresolved_sub_choice", errors.GetReason(back))
	s.Assert().Equal("celerity", errors.GetSuggestion(back))
}

func (s *ErrorsTestSuite) TestFromGRPCErrorPlainStatus() {
	back := errors.FromGRPCError(status.Error(codes.DeadlineExceeded, "context deadline exceeded"))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(back))
	s.Assert().Empty(errors.GetReason(back))

	back = errors.FromGRPCError(status.Error(codes.PermissionDenied, "nope"))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(back))

	plain := fmt.Errorf("dial failed")
	s.Assert().Equal(plain, errors.FromGRPCError(plain))
	s.Assert().Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversionWithoutMeta() {
	grpcErr := errors.ToGRPCError(errors.NotFound("character not found"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Empty(st.Details())

	s.Assert().Equal(codes.Internal, status.Code(errors.ToGRPCError(fmt.Errorf("boom"))))
	s.Assert().Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeDataLoss, codes.DataLoss},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	s.Assert().Equal(codes.Unknown, errors.Code("BOGUS").GRPCCode())

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
			s.Assert().Equal(tc.expected, status.Code(errors.ToGRPCError(errors.New(tc.code, "x"))))
		})
	}
}

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

type unresolved struct {
	reason, suggestion string
}

func (u unresolved) Error() string      { return "not offered" }
func (u unresolved) Reason() string     { return u.reason }
func (u unresolved) DidYouMean() string { return u.suggestion }

func (s *ValidationTestSuite) TestRefusalCarriesReason() {
	err := errors.NewValidationBuilder().
		Refusal("specialty", unresolved{reason: "unresolved_specialty", suggestion: "brawl_Grappling"}).
		Refusal("sub_choice", unresolved{reason: "unresolved_sub_choice"}).
		Refusal("ignored", nil).
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal("unresolved_specialty", errors.GetReason(err))
	s.Assert().Equal("brawl_Grappling", errors.GetSuggestion(err))
	s.Assert().Contains(err.Error(), "validation failed: specialty: not offered; sub_choice: not offered")

	fields := errors.GetMeta(err)[errors.MetaKeyFields].(map[string][]string)
	s.Assert().NotContains(fields, "ignored")
}

func (s *ValidationTestSuite) TestPlainFieldsHaveNoReason() {
	err := errors.NewValidationBuilder().RequiredField("name").Build()
	s.Require().Error(err)
	s.Assert().Empty(errors.GetReason(err))
	s.Assert().Empty(errors.GetSuggestion(err))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("generation", "must be between %d and %d", 10, 16).
		RequiredField("clan").
		InvalidField("predator_type", "not offered to this clan")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Brujah", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Toreador  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "Lucretia Valentina Maximiliana of the Seventh Court", 40, vb)
	errors.ValidateMaxLength("player", "kdig", 40, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 40 characters")
	s.Assert().NotContains(validationErrors, "player")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 6, 0, 5, vb)
	errors.ValidateRange("dots", 3, 0, 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 0 and 5")
	s.Assert().NotContains(validationErrors, "dots")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	categories := []string{"violent", "sociable", "stealth", "excluding_mortals"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", "feral", categories, vb)
	errors.ValidateEnum("other", "stealth", categories, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["category"][0], "must be one of: violent, sociable, stealth, excluding_mortals")
	s.Assert().NotContains(validationErrors, "other")
}

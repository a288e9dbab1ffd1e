package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationBuilder collects per-field problems with a request and turns
// them into one InvalidArgument error. A domain refusal recorded with Refusal
// also carries its reason and suggestion onto that error.
type ValidationBuilder struct {
	fields     map[string][]string
	reason     string
	suggestion string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Refusal records a domain refusal against field. The first refusal's
// reason and suggestion become the built error's reason and suggestion.
func (vb *ValidationBuilder) Refusal(field string, err error) *ValidationBuilder {
	if err == nil {
		return vb
	}
	if vb.reason == "" {
		vb.reason = GetReason(err)
		vb.suggestion = GetSuggestion(err)
	}
	return vb.Field(field, err.Error())
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	parts := make([]string, 0, len(vb.fields))
	for _, field := range slices.Sorted(maps.Keys(vb.fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", ")))
	}

	err := InvalidArgument("validation failed: " + strings.Join(parts, "; ")).
		WithMeta(MetaKeyFields, vb.fields).
		WithSuggestion(vb.suggestion)
	if vb.reason != "" {
		err.WithReason(vb.reason)
	}
	return err
}

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength checks if a string meets maximum length
func ValidateMaxLength(field, value string, maxValue int, vb *ValidationBuilder) {
	if len(value) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}

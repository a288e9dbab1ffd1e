// Package errors provides the structured error type used across vtm-builder.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes map onto gRPC status codes at the handler boundary.
//
// # Basic Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Refusal Reasons
//
// Domain refusals (an unresolved specialty, an over-budget allocation)
// implement Reasoner, and Suggester when they can name the closest valid
// input. GetReason and GetSuggestion read them straight off the refusal or
// off an *Error built from one:
//
//	err := errors.NewValidationBuilder().
//	    Refusal("sub_choice", commitErr).
//	    Build()
//
//	if errors.GetReason(err) == "unresolved_sub_choice" {
//	    fmt.Println("did you mean", errors.GetSuggestion(err))
//	}
//
// ToGRPCError sends the reason as errdetails.ErrorInfo.Reason and the
// suggestion as metadata; FromGRPCError restores both on the client side.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / InvalidArgument
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Convert domain refusals into reason-tagged errors
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors

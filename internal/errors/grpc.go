package errors

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies this service in errdetails.ErrorInfo
const ErrorDomain = "vtm-builder"

// fieldMetaPrefix prefixes per-field validation messages in ErrorInfo metadata
const fieldMetaPrefix = "field."

// ToGRPCError converts an error to a gRPC status error. Metadata travels as
// an errdetails.ErrorInfo whose Reason is the refusal reason when one is set.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if detailed, detailErr := st.WithDetails(errorInfo(customErr)); detailErr == nil {
			st = detailed
		}
	}
	return st.Err()
}

// FromGRPCError converts a status error returned by the builder back into an
// *Error, restoring the reason, suggestion and any other ErrorInfo metadata
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		for k, v := range info.GetMetadata() {
			customErr.WithMeta(k, v)
		}
		if info.GetReason() != "" && info.GetReason() != customErr.Code.String() {
			customErr.WithReason(info.GetReason())
		}
		break
	}

	return customErr
}

// errorInfo flattens error metadata into the string map errdetails expects
func errorInfo(e *Error) *errdetails.ErrorInfo {
	info := &errdetails.ErrorInfo{
		Reason:   e.Code.String(),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string, len(e.Meta)),
	}
	for k, v := range e.Meta {
		switch val := v.(type) {
		case map[string][]string:
			for field, msgs := range val {
				info.Metadata[fieldMetaPrefix+field] = strings.Join(msgs, "; ")
			}
		default:
			if k == MetaKeyReason {
				info.Reason = fmt.Sprint(v)
				continue
			}
			info.Metadata[k] = fmt.Sprint(v)
		}
	}
	return info
}

package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

// decode reads a request struct into dst through its JSON field names
func decode(req *structpb.Struct, dst any) error {
	if req == nil {
		return errors.InvalidArgument("request is required")
	}

	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode writes src into a response struct through its JSON field names
func encode(src any) (*structpb.Struct, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Internalf("failed to encode response: %v", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Internalf("failed to encode response: %v", err)
	}
	return out, nil
}

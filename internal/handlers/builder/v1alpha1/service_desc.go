// Package v1alpha1 exposes the character builder over gRPC.
//
// Messages are google.protobuf.Struct values whose fields follow the JSON
// names of the domain types, so the services are registered with
// hand-written service descriptors instead of generated stubs.
//
// No .proto file backs the descriptors, so server reflection lists the
// services but cannot describe them, and grpcurl cannot build requests for
// them. Use the vtm-builder client subcommands, or invoke FullMethod with a
// structpb.Struct request from Go.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service names
const (
	PredatorTypeServiceName = "vtm.builder.v1alpha1.PredatorTypeService"
	CharacterServiceName    = "vtm.builder.v1alpha1.CharacterService"
)

// PredatorTypeServiceServer is the server API for the predator type step
type PredatorTypeServiceServer interface {
	ListPredatorTypes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	OpenChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CommitChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CancelChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// CharacterServiceServer is the server API for the character aggregate
type CharacterServiceServer interface {
	CreateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UpdateDisciplines(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// method builds a MethodDesc the way generated code does, running the
// server interceptor chain around the call
func method[S any](
	service, name string,
	call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodDesc {
	fullMethod := FullMethod(service, name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// PredatorTypeServiceDesc describes PredatorTypeService for grpc.Server
var PredatorTypeServiceDesc = grpc.ServiceDesc{
	ServiceName: PredatorTypeServiceName,
	HandlerType: (*PredatorTypeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(PredatorTypeServiceName, "ListPredatorTypes", PredatorTypeServiceServer.ListPredatorTypes),
		method(PredatorTypeServiceName, "OpenChoice", PredatorTypeServiceServer.OpenChoice),
		method(PredatorTypeServiceName, "SetPoints", PredatorTypeServiceServer.SetPoints),
		method(PredatorTypeServiceName, "GetSession", PredatorTypeServiceServer.GetSession),
		method(PredatorTypeServiceName, "CommitChoice", PredatorTypeServiceServer.CommitChoice),
		method(PredatorTypeServiceName, "CancelChoice", PredatorTypeServiceServer.CancelChoice),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vtm/builder/v1alpha1",
}

// CharacterServiceDesc describes CharacterService for grpc.Server
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(CharacterServiceName, "CreateCharacter", CharacterServiceServer.CreateCharacter),
		method(CharacterServiceName, "GetCharacter", CharacterServiceServer.GetCharacter),
		method(CharacterServiceName, "ListCharacters", CharacterServiceServer.ListCharacters),
		method(CharacterServiceName, "DeleteCharacter", CharacterServiceServer.DeleteCharacter),
		method(CharacterServiceName, "UpdateDisciplines", CharacterServiceServer.UpdateDisciplines),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vtm/builder/v1alpha1",
}

// RegisterPredatorTypeServiceServer registers srv with s
func RegisterPredatorTypeServiceServer(s grpc.ServiceRegistrar, srv PredatorTypeServiceServer) {
	s.RegisterService(&PredatorTypeServiceDesc, srv)
}

// RegisterCharacterServiceServer registers srv with s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}

// FullMethod returns the invoke path of a method
func FullMethod(service, name string) string {
	return "/" + service + "/" + name
}

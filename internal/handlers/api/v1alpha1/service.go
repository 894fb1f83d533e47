// Package v1alpha1 exposes the roster over gRPC as
// armyrater.api.v1alpha1.ArmyService. Requests and responses are
// google.protobuf.Struct values using the same keys as the JSON export.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "armyrater.api.v1alpha1.ArmyService"

// Method names
const (
	MethodCreateArmy      = "CreateArmy"
	MethodGetArmy         = "GetArmy"
	MethodListArmies      = "ListArmies"
	MethodDeleteArmy      = "DeleteArmy"
	MethodPutUnit         = "PutUnit"
	MethodRemoveUnit      = "RemoveUnit"
	MethodSetUnitQuantity = "SetUnitQuantity"
	MethodClearUnits      = "ClearUnits"
	MethodSetGameSize     = "SetGameSize"
	MethodImportArmy      = "ImportArmy"
	MethodExportArmy      = "ExportArmy"
	MethodScoreArmy       = "ScoreArmy"
	MethodScoreUnits      = "ScoreUnits"
	MethodGetThresholds   = "GetThresholds"
)

// ArmyServiceServer is the server API for ArmyService
type ArmyServiceServer interface {
	CreateArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListArmies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PutUnit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveUnit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetUnitQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearUnits(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetGameSize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ScoreArmy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ScoreUnits(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetThresholds(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv ArmyServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

var serverCalls = map[string]unaryCall{
	MethodCreateArmy:      ArmyServiceServer.CreateArmy,
	MethodGetArmy:         ArmyServiceServer.GetArmy,
	MethodListArmies:      ArmyServiceServer.ListArmies,
	MethodDeleteArmy:      ArmyServiceServer.DeleteArmy,
	MethodPutUnit:         ArmyServiceServer.PutUnit,
	MethodRemoveUnit:      ArmyServiceServer.RemoveUnit,
	MethodSetUnitQuantity: ArmyServiceServer.SetUnitQuantity,
	MethodClearUnits:      ArmyServiceServer.ClearUnits,
	MethodSetGameSize:     ArmyServiceServer.SetGameSize,
	MethodImportArmy:      ArmyServiceServer.ImportArmy,
	MethodExportArmy:      ArmyServiceServer.ExportArmy,
	MethodScoreArmy:       ArmyServiceServer.ScoreArmy,
	MethodScoreUnits:      ArmyServiceServer.ScoreUnits,
	MethodGetThresholds:   ArmyServiceServer.GetThresholds,
}

// methodOrder fixes the descriptor layout
var methodOrder = []string{
	MethodCreateArmy,
	MethodGetArmy,
	MethodListArmies,
	MethodDeleteArmy,
	MethodPutUnit,
	MethodRemoveUnit,
	MethodSetUnitQuantity,
	MethodClearUnits,
	MethodSetGameSize,
	MethodImportArmy,
	MethodExportArmy,
	MethodScoreArmy,
	MethodScoreUnits,
	MethodGetThresholds,
}

// ArmyServiceDesc is the grpc.ServiceDesc for ArmyService
var ArmyServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArmyServiceServer)(nil),
	Methods:     methodDescs(),
	Streams:     []grpc.StreamDesc{},
	Metadata:    "armyrater/api/v1alpha1/army.proto",
}

func methodDescs() []grpc.MethodDesc {
	descs := make([]grpc.MethodDesc, 0, len(methodOrder))
	for _, name := range methodOrder {
		descs = append(descs, grpc.MethodDesc{
			MethodName: name,
			Handler:    unaryHandler(name, serverCalls[name]),
		})
	}
	return descs
}

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ArmyServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ArmyServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the /service/method path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// RegisterArmyServiceServer registers srv with the gRPC server
func RegisterArmyServiceServer(s grpc.ServiceRegistrar, srv ArmyServiceServer) {
	s.RegisterService(&ArmyServiceDesc, srv)
}

// UnimplementedArmyServiceServer can be embedded to satisfy the interface
type UnimplementedArmyServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedArmyServiceServer) CreateArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodCreateArmy)
}

func (UnimplementedArmyServiceServer) GetArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetArmy)
}

func (UnimplementedArmyServiceServer) ListArmies(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodListArmies)
}

func (UnimplementedArmyServiceServer) DeleteArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodDeleteArmy)
}

func (UnimplementedArmyServiceServer) PutUnit(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodPutUnit)
}

func (UnimplementedArmyServiceServer) RemoveUnit(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodRemoveUnit)
}

func (UnimplementedArmyServiceServer) SetUnitQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSetUnitQuantity)
}

func (UnimplementedArmyServiceServer) ClearUnits(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodClearUnits)
}

func (UnimplementedArmyServiceServer) SetGameSize(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSetGameSize)
}

func (UnimplementedArmyServiceServer) ImportArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodImportArmy)
}

func (UnimplementedArmyServiceServer) ExportArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodExportArmy)
}

func (UnimplementedArmyServiceServer) ScoreArmy(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodScoreArmy)
}

func (UnimplementedArmyServiceServer) ScoreUnits(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodScoreUnits)
}

func (UnimplementedArmyServiceServer) GetThresholds(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetThresholds)
}

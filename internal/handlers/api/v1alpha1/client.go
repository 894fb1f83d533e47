package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ArmyServiceClient calls ArmyService methods by name
type ArmyServiceClient interface {
	Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type armyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArmyServiceClient wraps a client connection
func NewArmyServiceClient(cc grpc.ClientConnInterface) ArmyServiceClient {
	return &armyServiceClient{cc: cc}
}

func (c *armyServiceClient) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

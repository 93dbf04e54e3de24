package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const InventoryServiceName = "pos.InventoryService"

type InventoryServer interface {
	ApplyMovement(context.Context, *ApplyMovementRequest) (*MovementReply, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsReply, error)
	PurgeMovement(context.Context, *IDRequest) (*MovementReply, error)
	Audit(context.Context, *Empty) (*AuditReply, error)
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InventoryServiceName, "ApplyMovement", InventoryServer.ApplyMovement),
		unary(InventoryServiceName, "ListMovements", InventoryServer.ListMovements),
		unary(InventoryServiceName, "PurgeMovement", InventoryServer.PurgeMovement),
		unary(InventoryServiceName, "Audit", InventoryServer.Audit),
	},
	Metadata: "pos/inventory",
}

func RegisterInventoryServer(s grpc.ServiceRegistrar, srv InventoryServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

type InventoryClient interface {
	ApplyMovement(ctx context.Context, in *ApplyMovementRequest, opts ...grpc.CallOption) (*MovementReply, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsReply, error)
	PurgeMovement(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MovementReply, error)
	Audit(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AuditReply, error)
}

type inventoryClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryClient(cc grpc.ClientConnInterface) InventoryClient {
	return &inventoryClient{cc: cc}
}

func (c *inventoryClient) ApplyMovement(ctx context.Context, in *ApplyMovementRequest, opts ...grpc.CallOption) (*MovementReply, error) {
	return invoke[MovementReply](ctx, c.cc, InventoryServiceName, "ApplyMovement", in, opts)
}

func (c *inventoryClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsReply, error) {
	return invoke[ListMovementsReply](ctx, c.cc, InventoryServiceName, "ListMovements", in, opts)
}

func (c *inventoryClient) PurgeMovement(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MovementReply, error) {
	return invoke[MovementReply](ctx, c.cc, InventoryServiceName, "PurgeMovement", in, opts)
}

func (c *inventoryClient) Audit(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AuditReply, error) {
	return invoke[AuditReply](ctx, c.cc, InventoryServiceName, "Audit", in, opts)
}

package rpc

import (
	"context"

	"google.golang.org/grpc"

	"vican-pos/internal/services/pos"
)

const SalesServiceName = "pos.SalesService"

type SalesServer interface {
	Sell(context.Context, *SellRequest) (*pos.SaleResult, error)
	GetReceipt(context.Context, *IDRequest) (*pos.Receipt, error)
	PurgeSale(context.Context, *IDRequest) (*Empty, error)
}

var SalesServiceDesc = grpc.ServiceDesc{
	ServiceName: SalesServiceName,
	HandlerType: (*SalesServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SalesServiceName, "Sell", SalesServer.Sell),
		unary(SalesServiceName, "GetReceipt", SalesServer.GetReceipt),
		unary(SalesServiceName, "PurgeSale", SalesServer.PurgeSale),
	},
	Metadata: "pos/sales",
}

func RegisterSalesServer(s grpc.ServiceRegistrar, srv SalesServer) {
	s.RegisterService(&SalesServiceDesc, srv)
}

type SalesClient interface {
	Sell(ctx context.Context, in *SellRequest, opts ...grpc.CallOption) (*pos.SaleResult, error)
	GetReceipt(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*pos.Receipt, error)
	PurgeSale(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
}

type salesClient struct {
	cc grpc.ClientConnInterface
}

func NewSalesClient(cc grpc.ClientConnInterface) SalesClient {
	return &salesClient{cc: cc}
}

func (c *salesClient) Sell(ctx context.Context, in *SellRequest, opts ...grpc.CallOption) (*pos.SaleResult, error) {
	return invoke[pos.SaleResult](ctx, c.cc, SalesServiceName, "Sell", in, opts)
}

func (c *salesClient) GetReceipt(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*pos.Receipt, error) {
	return invoke[pos.Receipt](ctx, c.cc, SalesServiceName, "GetReceipt", in, opts)
}

func (c *salesClient) PurgeSale(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, SalesServiceName, "PurgeSale", in, opts)
}

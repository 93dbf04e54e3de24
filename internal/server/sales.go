package server

import (
	"context"

	"vican-pos/internal/rpc"
	"vican-pos/internal/services/pos"
)

type salesServer struct {
	engine *pos.Engine
}

func (s *salesServer) Sell(ctx context.Context, req *rpc.SellRequest) (*pos.SaleResult, error) {
	return s.engine.Sell(ctx, pos.SellRequest{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		ActorID:    req.ActorID,
		CustomerID: req.CustomerID,
	})
}

func (s *salesServer) GetReceipt(ctx context.Context, req *rpc.IDRequest) (*pos.Receipt, error) {
	return s.engine.Receipt(ctx, req.ID)
}

func (s *salesServer) PurgeSale(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := s.engine.PurgeSale(ctx, req.ID); err != nil {
		return nil, err
	}
	return &rpc.Empty{}, nil
}

package server

import (
	"context"

	"vican-pos/internal/rpc"
	"vican-pos/internal/services/reports"
)

type reportServer struct {
	engine *reports.Engine
}

func (s *reportServer) SalesReport(ctx context.Context, req *rpc.RangeRequest) (*reports.SalesReport, error) {
	return s.engine.SalesReport(ctx, req.Start, req.End)
}

func (s *reportServer) ExpenseReport(ctx context.Context, req *rpc.RangeRequest) (*reports.ExpenseReport, error) {
	return s.engine.ExpenseReport(ctx, req.Start, req.End)
}

func (s *reportServer) Analytics(ctx context.Context, req *rpc.WindowRequest) (*reports.Analytics, error) {
	return s.engine.Analytics(ctx, req.Days)
}

func (s *reportServer) RestockRecommendations(ctx context.Context, _ *rpc.Empty) (*rpc.RestockReply, error) {
	return &rpc.RestockReply{Items: s.engine.RestockRecommendations(ctx)}, nil
}

func (s *reportServer) CashierPerformance(ctx context.Context, req *rpc.WindowRequest) (*rpc.PerformanceReply, error) {
	scores, err := s.engine.CashierPerformance(ctx, req.Days)
	if err != nil {
		return nil, err
	}
	return &rpc.PerformanceReply{Cashiers: scores}, nil
}

package server

import (
	"context"

	"vican-pos/internal/domain"
	"vican-pos/internal/rpc"
	"vican-pos/internal/services/inventory"
)

type inventoryServer struct {
	svc *inventory.Service
}

// ApplyMovement serves warehouse receipts and dispatches. Sale movements
// are only ever written by the sale engine.
func (s *inventoryServer) ApplyMovement(ctx context.Context, req *rpc.ApplyMovementRequest) (*rpc.MovementReply, error) {
	kind, err := domain.ParseMovementKind(req.Kind)
	if err != nil {
		return nil, err
	}

	var res *inventory.MovementResult
	switch kind {
	case domain.MovementRestock:
		res, err = s.svc.Receive(ctx, req.ProductID, req.Quantity, req.ActorID, req.Note)
	case domain.MovementDispatch:
		res, err = s.svc.Dispatch(ctx, req.ProductID, req.Quantity, req.ActorID, req.Note)
	default:
		return nil, domain.Invalid("kind", "sale movements are recorded by the sale engine")
	}
	if err != nil {
		return nil, err
	}
	return &rpc.MovementReply{Movement: rpc.MovementFromModel(res.Movement), Quantity: res.Quantity}, nil
}

func (s *inventoryServer) ListMovements(ctx context.Context, req *rpc.ListMovementsRequest) (*rpc.ListMovementsReply, error) {
	return &rpc.ListMovementsReply{Movements: s.svc.History(ctx, req.ProductID, req.Limit)}, nil
}

func (s *inventoryServer) PurgeMovement(ctx context.Context, req *rpc.IDRequest) (*rpc.MovementReply, error) {
	m, err := s.svc.PurgeMovement(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &rpc.MovementReply{Movement: rpc.MovementFromModel(*m)}, nil
}

func (s *inventoryServer) Audit(ctx context.Context, _ *rpc.Empty) (*rpc.AuditReply, error) {
	d, err := s.svc.Audit(ctx)
	if err != nil {
		return nil, err
	}
	return &rpc.AuditReply{Discrepancies: d}, nil
}

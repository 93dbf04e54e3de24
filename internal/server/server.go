// Package server adapts the POS services to the gRPC interfaces in
// internal/rpc.
package server

import (
	"gorm.io/gorm"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"vican-pos/internal/cache"
	"vican-pos/internal/rpc"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/services/inventory"
	"vican-pos/internal/services/pos"
	"vican-pos/internal/services/reports"
	"vican-pos/internal/utils"
)

// Services bundles every backend service behind the gRPC listener.
type Services struct {
	Inventory *inventory.Service
	Sales     *pos.Engine
	Reports   *reports.Engine
	Directory *directory.Service
}

func NewServices(db *gorm.DB, c *cache.Cache, tokens *utils.TokenIssuer, dirOpts directory.Options, reportOpts ...reports.Option) *Services {
	return &Services{
		Inventory: inventory.NewService(db, c),
		Sales:     pos.NewEngine(db, c),
		Reports:   reports.NewEngine(db, c, reportOpts...),
		Directory: directory.NewService(db, c, tokens, dirOpts),
	}
}

// NewGRPCServer registers all POS services and the standard health service.
func NewGRPCServer(svc *Services, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append(opts, grpc.ChainUnaryInterceptor(rpc.UnaryErrorInterceptor))
	s := grpc.NewServer(opts...)

	rpc.RegisterInventoryServer(s, &inventoryServer{svc: svc.Inventory})
	rpc.RegisterSalesServer(s, &salesServer{engine: svc.Sales})
	rpc.RegisterReportServer(s, &reportServer{engine: svc.Reports})
	rpc.RegisterDirectoryServer(s, &directoryServer{svc: svc.Directory})

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	for _, name := range []string{
		rpc.InventoryServiceName,
		rpc.SalesServiceName,
		rpc.ReportServiceName,
		rpc.DirectoryServiceName,
	} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return s, hs
}

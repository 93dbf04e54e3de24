package clients

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"vican-pos/internal/rpc"
)

type GRPCClients struct {
	Inventory rpc.InventoryClient
	Sales     rpc.SalesClient
	Reports   rpc.ReportClient
	Directory rpc.DirectoryClient
	Health    healthpb.HealthClient
	posConn   *grpc.ClientConn
}

// NewGRPCClients connects to the POS backend. The connection is lazy, so an
// unreachable backend shows up as Unavailable on the first call.
func NewGRPCClients(addr string, opts ...grpc.DialOption) (*GRPCClients, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	}, opts...)

	posConn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("pos service connection failed: %w", err)
	}

	log.Printf("[gateway] using POS backend at %s", addr)
	return FromConn(posConn), nil
}

// FromConn builds the typed clients over an existing connection.
func FromConn(conn *grpc.ClientConn) *GRPCClients {
	return &GRPCClients{
		Inventory: rpc.NewInventoryClient(conn),
		Sales:     rpc.NewSalesClient(conn),
		Reports:   rpc.NewReportClient(conn),
		Directory: rpc.NewDirectoryClient(conn),
		Health:    healthpb.NewHealthClient(conn),
		posConn:   conn,
	}
}

// ServiceStatus asks the backend's health service about every POS service.
func (c *GRPCClients) ServiceStatus(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	out := map[string]string{}
	for _, name := range []string{
		rpc.InventoryServiceName,
		rpc.SalesServiceName,
		rpc.ReportServiceName,
		rpc.DirectoryServiceName,
	} {
		resp, err := c.Health.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		if err != nil {
			out[name] = "unavailable"
			continue
		}
		out[name] = resp.GetStatus().String()
	}
	return out
}

func (c *GRPCClients) Close() {
	if c.posConn != nil {
		c.posConn.Close()
	}
}

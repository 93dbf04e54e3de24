// Package servertest runs the full gRPC backend in memory for tests.
package servertest

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/gorm"

	"vican-pos/internal/database/dbtest"
	"vican-pos/internal/rpc"
	"vican-pos/internal/server"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/utils"
)

const TokenSecret = "servertest-secret"

type Backend struct {
	DB       *gorm.DB
	Conn     *grpc.ClientConn
	Services *server.Services
	Tokens   *utils.TokenIssuer
}

// Start serves every POS service over an in-memory listener backed by a
// fresh SQLite database and returns a connected client.
func Start(t *testing.T) *Backend {
	t.Helper()

	db := dbtest.New(t)
	tokens := utils.NewTokenIssuer(TokenSecret)
	svc := server.NewServices(db, nil, tokens, directory.Options{})
	s, _ := server.NewGRPCServer(svc)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &Backend{DB: db, Conn: conn, Services: svc, Tokens: tokens}
}

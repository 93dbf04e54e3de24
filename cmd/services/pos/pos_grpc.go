package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc/reflection"

	"vican-pos/config"
	"vican-pos/internal/cache"
	"vican-pos/internal/database"
	"vican-pos/internal/server"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/services/reports"
	"vican-pos/internal/utils"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	c := cache.New(nil)
	if cfg.Redis.Enabled {
		rdb, err := config.NewRedis(cfg.Redis)
		if err != nil {
			log.Printf("Redis unavailable, running without report cache: %v", err)
		} else {
			defer rdb.Close()
			c = cache.New(rdb)
		}
	}

	db, err := database.NewConnection(cfg.DB.DSN, database.Options{
		LogLevel:     cfg.DB.LogLevel,
		MaxOpenConns: cfg.DB.MaxOpenConns,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.MigratePOSDB(db); err != nil {
		log.Fatalf("Failed to migrate POS database: %v", err)
	}

	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret)
	svc := server.NewServices(db, c, tokens,
		directory.Options{
			SessionTTL:    cfg.Auth.SessionTTL,
			LoginTokenTTL: cfg.Auth.LoginTokenTTL,
		},
		reports.WithCacheTTL(cfg.Reports.CacheTTL),
	)

	if cfg.Auth.AdminPassword != "" {
		created, err := svc.Directory.EnsureAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		if created {
			log.Printf("Created admin user %q", cfg.Auth.AdminUsername)
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	s, hs := server.NewGRPCServer(svc)
	reflection.Register(s)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down POS service")
		hs.Shutdown()
		s.GracefulStop()
	}()

	log.Printf(" 💰 POS service listening on %s", cfg.Server.GRPCAddr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vican-pos/config"
	"vican-pos/internal/domain"
	"vican-pos/internal/gateway/clients"
	"vican-pos/internal/gateway/handlers"
	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/utils"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	grpcClients, err := clients.NewGRPCClients(cfg.Gateway.POSServiceURL)
	if err != nil {
		log.Fatalf("Failed to create POS client: %v", err)
	}
	defer grpcClients.Close()

	r, err := setupRouter(grpcClients, utils.NewTokenIssuer(cfg.Auth.JWTSecret), cfg.Gateway)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	log.Printf("Starting server on %s", cfg.Gateway.Addr)
	if err := r.Run(cfg.Gateway.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(grpcClients *clients.GRPCClients, tokens *utils.TokenIssuer, cfg config.GatewayConfig) (*gin.Engine, error) {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	if cfg.RateLimit != "" {
		limit, err := middleware.RateLimit(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(limit)
	}

	authHandler := handlers.NewAuthHTTPHandler(grpcClients.Directory)
	salesHandler := handlers.NewSalesHTTPHandler(grpcClients.Sales)
	inventoryHandler := handlers.NewInventoryHTTPHandler(grpcClients.Inventory)
	reportHandler := handlers.NewReportHTTPHandler(grpcClients.Reports)
	directoryHandler := handlers.NewDirectoryHTTPHandler(grpcClients.Directory)

	can := middleware.Require

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/qr-login", authHandler.QRLogin)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(tokens))
	{
		sales := protected.Group("/sales")
		{
			sales.POST("", can(domain.CapSell), salesHandler.Sell)
			sales.GET("/:id/receipt", can(domain.CapViewReceipt), salesHandler.GetReceipt)
			sales.DELETE("/:id", can(domain.CapPurgeRecords), salesHandler.PurgeSale)
		}

		inventory := protected.Group("/inventory")
		{
			inventory.POST("/receive", can(domain.CapMoveStock), inventoryHandler.Receive)
			inventory.POST("/dispatch", can(domain.CapMoveStock), inventoryHandler.Dispatch)
			inventory.GET("/movements", can(domain.CapViewMovements), inventoryHandler.ListMovements)
			inventory.DELETE("/movements/:id", can(domain.CapPurgeRecords), inventoryHandler.PurgeMovement)
			inventory.GET("/audit", can(domain.CapViewMovements), inventoryHandler.Audit)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/sales", can(domain.CapViewReports), reportHandler.SalesReport)
			reports.GET("/expenses", can(domain.CapViewReports), reportHandler.ExpenseReport)
			reports.GET("/analytics", can(domain.CapViewReports), reportHandler.Analytics)
			reports.GET("/restock", can(domain.CapViewRestock), reportHandler.Restock)
			reports.GET("/cashiers", can(domain.CapViewReports), reportHandler.CashierPerformance)
		}

		products := protected.Group("/products")
		{
			products.GET("", can(domain.CapViewCatalog), directoryHandler.ListProducts)
			products.GET("/:id", can(domain.CapViewCatalog), directoryHandler.GetProduct)
			products.POST("", can(domain.CapManageCatalog), directoryHandler.CreateProduct)
			products.PUT("/:id", can(domain.CapManageCatalog), directoryHandler.UpdateProduct)
			products.DELETE("/:id", can(domain.CapPurgeRecords), directoryHandler.PurgeProduct)
		}

		customers := protected.Group("/customers")
		{
			customers.GET("", can(domain.CapViewCustomers), directoryHandler.ListCustomers)
			customers.GET("/:id", can(domain.CapViewCustomers), directoryHandler.GetCustomer)
			customers.POST("", can(domain.CapManageCustomers), directoryHandler.CreateCustomer)
			customers.PUT("/:id", can(domain.CapManageCustomers), directoryHandler.UpdateCustomer)
		}

		users := protected.Group("/users")
		users.Use(can(domain.CapManageUsers))
		{
			users.GET("", directoryHandler.ListUsers)
			users.GET("/:id", directoryHandler.GetUser)
			users.POST("", directoryHandler.CreateUser)
			users.PUT("/:id", directoryHandler.UpdateUser)
			users.DELETE("/:id", directoryHandler.PurgeUser)
			users.POST("/:id/login-token", directoryHandler.IssueLoginToken)
		}

		protected.POST("/expenses", can(domain.CapManageExpenses), directoryHandler.AddExpense)
	}

	r.GET("/health", healthCheckHandler(grpcClients))

	return r, nil
}

func healthCheckHandler(grpcClients *clients.GRPCClients) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		services := grpcClients.ServiceStatus(ctx)

		status := "healthy"
		httpStatus := http.StatusOK
		unavailableServices := []string{}
		for name, s := range services {
			if s != "SERVING" {
				unavailableServices = append(unavailableServices, name)
			}
		}
		if len(unavailableServices) > 0 {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":               status,
			"services":             services,
			"unavailable_services": unavailableServices,
			"timestamp":            time.Now(),
		})
	}
}

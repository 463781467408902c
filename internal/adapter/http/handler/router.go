package handler

import (
	"tapconnect/internal/adapter/http/middleware"
	"tapconnect/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc       ports.WalletService
	InteractionSvc  ports.InteractionService
	VendorSvc       ports.VendorCatalogService
	InteractionRepo ports.InteractionRepository
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- User-scoped routes (identity from the auth gateway header) ---
	identity := middleware.Identity(deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)

	wallet := v1.Group("/wallet", identity)
	{
		wallet.GET("/balance", walletHandler.GetBalance)
		wallet.POST("/purchase", walletHandler.Purchase)
		wallet.POST("/spend", walletHandler.Spend)
	}

	// --- Operator routes ---
	v1.POST("/wallet/reward", walletHandler.Reward)

	vendorHandler := NewVendorHandler(deps.VendorSvc, deps.InteractionRepo)
	vendors := v1.Group("/vendors")
	{
		vendors.POST("", vendorHandler.CreateVendor)
		vendors.POST("/:vendor_id/products", vendorHandler.AddProduct)
	}

	events := v1.Group("/events")
	{
		events.GET("/:event_id/vendors", vendorHandler.ListVendors)
		events.GET("/:event_id/interactions", vendorHandler.ListInteractions)
	}

	// --- Device gateway routes (radio bridge and vendor terminals) ---
	deviceHandler := NewDeviceHandler(deps.InteractionSvc, deps.WalletSvc)
	devices := v1.Group("/devices")
	{
		devices.POST("/assign", deviceHandler.Assign)
		devices.POST("/tap", deviceHandler.Tap)
		devices.POST("/handshake", deviceHandler.Handshake)
		devices.POST("/payment", deviceHandler.Payment)
	}

	return r
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	partnerapp "github.com/storefront/backend/internal/application/partner"
	reportapp "github.com/storefront/backend/internal/application/report"
	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the record store
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Store, gormLog)
	if err != nil {
		log.Fatal("Failed to open record store", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close record store", zap.Error(err))
		}
	}()

	kv := persistence.NewKVStore(db, log)
	if err := kv.Migrate(); err != nil {
		log.Fatal("Failed to migrate record store", zap.Error(err))
	}

	// Initialize repositories
	productRepo := persistence.NewKVProductRepository(kv, cfg.Store.Seed, log)
	customerRepo := persistence.NewKVCustomerRepository(kv)
	saleRepo := persistence.NewKVSaleRepository(kv)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	checkoutService := tradeapp.NewCheckoutService(
		productRepo,
		customerRepo,
		saleRepo,
		decimal.NewFromFloat(cfg.Sales.TaxRate),
	)
	salesService := reportapp.NewSalesService(saleRepo, decimal.NewFromFloat(cfg.Sales.ProfitMargin))

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	cartHandler := handler.NewCartHandler(checkoutService)
	salesHandler := handler.NewSalesHandler(salesService)
	systemHandler := handler.NewSystemHandler()

	// Setup Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	middleware.SetupValidator()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware chain, ordered:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog").
		GET("/products", productHandler.List).
		POST("/products", productHandler.Create).
		GET("/products/:id", productHandler.GetByID).
		PUT("/products/:id", productHandler.Update).
		PATCH("/products/:id/stock", productHandler.AdjustStock).
		DELETE("/products/:id", productHandler.Delete).
		GET("/deleted", productHandler.DeletedLog).
		POST("/deleted/purge", productHandler.PurgeDeleted)

	partnerRoutes := router.NewDomainGroup("partner", "/partner").
		POST("/customers", customerHandler.Register).
		GET("/customers", customerHandler.List).
		GET("/customers/active", customerHandler.Active)

	tradeRoutes := router.NewDomainGroup("trade", "/trade").
		GET("/cart", cartHandler.View).
		POST("/cart/items", cartHandler.AddItem).
		DELETE("/cart/items/:id", cartHandler.RemoveItem).
		POST("/cart/totals", cartHandler.Totals).
		POST("/cart/checkout", cartHandler.Checkout)

	reportRoutes := router.NewDomainGroup("reports", "/reports").
		GET("/sales", salesHandler.List).
		GET("/sales/summary", salesHandler.Summary).
		GET("/sales/:id", salesHandler.GetByID).
		GET("/sales/:id/invoice", salesHandler.Invoice).
		DELETE("/sales/:id", salesHandler.Delete).
		POST("/sales/delete", salesHandler.DeleteMany)

	systemRoutes := router.NewDomainGroup("system", "/system").
		GET("/ping", systemHandler.Ping).
		GET("/info", systemHandler.GetSystemInfo)

	r.Register(catalogRoutes).
		Register(partnerRoutes).
		Register(tradeRoutes).
		Register(reportRoutes).
		Register(systemRoutes).
		Setup()

	// Configure HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
				"store":  "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  "ok",
		})
	}
}

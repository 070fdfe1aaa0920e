package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"ghala.backend/internal/config"
	"ghala.backend/internal/infrastructure/jobs"
	"ghala.backend/internal/infrastructure/metrics"
	"ghala.backend/internal/infrastructure/persistence"
	"ghala.backend/internal/infrastructure/store"
	"ghala.backend/internal/interfaces/http/handlers"
	"ghala.backend/internal/interfaces/http/middleware"
	"ghala.backend/internal/usecases"
	"ghala.backend/pkg/jwt"
	"ghala.backend/pkg/logger"
	"ghala.backend/pkg/redis"
)

var (
	loadDotenv        = godotenv.Load
	loadCfg           = config.Load
	initLog           = logger.Init
	initRedis         = redis.Init
	openSnapshotStore = persistence.Open
	newOrderMetrics   = metrics.NewOrderMetrics
	runServer         = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis (optional: only backs the idempotency cache)
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Warn(context.Background(), "Redis unavailable, idempotency cache disabled", zap.Error(err))
		} else {
			logger.Info(context.Background(), "Redis initialized")
		}
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the snapshot database and restore state. A broken snapshot
	// store never blocks startup: the server falls back to seed data and
	// in-memory-only operation.
	snap := store.Seed()
	var saver store.Saver
	if snaps, err := openSnapshotStore(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		log.Printf("⚠️ Snapshot database unavailable: %v (state will not survive restarts)", err)
	} else {
		saver = snaps
		if empty, err := snaps.Empty(context.Background()); err == nil && !empty {
			if loaded, err := snaps.Load(context.Background()); err == nil {
				snap = loaded
			} else {
				log.Printf("⚠️ Snapshot load failed: %v (reinitializing with seed data)", err)
			}
		} else {
			log.Println("🌱 Empty snapshot database, seeding demo data")
		}
	}

	st := store.New(saver)
	st.Restore(snap)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize metrics
	orderMetrics := newOrderMetrics()

	// Start the settlement workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	settlementJob := jobs.NewSettlementJob(st.Orders(), orderMetrics, cfg.Settlement)
	settlementJob.Start(ctx)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(st.Users(), jwtService)
	merchantUsecase := usecases.NewMerchantUsecase(st.Merchants())
	orderUsecase := usecases.NewOrderUsecase(st.Orders(), st.Merchants(), settlementJob, orderMetrics)
	analyticsUsecase := usecases.NewAnalyticsUsecase(st.Orders())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUsecase)
	adminHandler := handlers.NewAdminHandler(merchantUsecase, orderUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:      authHandler,
		merchantHandler:  merchantHandler,
		orderHandler:     orderHandler,
		analyticsHandler: analyticsHandler,
		adminHandler:     adminHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		settlementJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Ghala Backend starting on port %s", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fluentfocus/backend/docs"
	"github.com/fluentfocus/backend/internal/config"
	"github.com/fluentfocus/backend/internal/database"
	"github.com/fluentfocus/backend/internal/handlers"
	"github.com/fluentfocus/backend/internal/ingestion"
	"github.com/fluentfocus/backend/internal/lock"
	"github.com/fluentfocus/backend/internal/logger"
	"github.com/fluentfocus/backend/internal/middlewares"
	"github.com/fluentfocus/backend/internal/repositories"
	"github.com/fluentfocus/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title FluentFocus API
// @version 1.0
// @description Daily IELTS and TOEFL vocabulary batches and word store seeding

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Required on /api/seed when SEED_API_KEY is set
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting FluentFocus API")

	// Connect to database
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(connectCtx, cfg.DSN())
	cancelConnect()
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed lock: shared through Redis when configured, process local otherwise
	var locker lock.Locker
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		locker = lock.NewRedisLocker(rdb, lock.DefaultKey, lock.DefaultTTL)
	} else {
		logger.Logger.Warn("REDIS_HOST is not set, seed lock is process local")
		locker = lock.NewLocalLocker()
	}

	// Initialize repositories
	wordRepo := repositories.NewWordRepository(db)
	userRepo := repositories.NewUserRepository(db)
	progressRepo := repositories.NewProgressRepository(db)

	// Initialize services
	ingester := ingestion.NewFromConfig(cfg.Ingestion, wordRepo, logger.Logger)
	dailyService := services.NewDailyService(userRepo, wordRepo, progressRepo, logger.Logger)
	seedService := services.NewSeedService(wordRepo, ingester, locker, logger.Logger)

	// Seeding is open unless a key is configured
	var seedGuard func(http.Handler) http.Handler
	if cfg.SeedAPIKey != "" {
		seedGuard = middlewares.APIKey(cfg.SeedAPIKey)
	} else {
		logger.Logger.Warn("SEED_API_KEY is not set, /api/seed is unprotected")
	}

	// Initialize handlers
	dailyHandler := handlers.NewDailyHandler(dailyService, logger.Logger)
	seedHandler := handlers.NewSeedHandler(seedService, seedGuard, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestID)
	r.Use(middlewares.AccessLog(logger.Logger))
	r.Use(middlewares.Recovery(logger.Logger))
	r.Use(middlewares.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimit(middlewares.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes
	dailyHandler.RegisterRoutes(r)
	seedHandler.RegisterRoutes(r)

	// Start server. The write timeout covers a first seed, which answers only after every word is enriched.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

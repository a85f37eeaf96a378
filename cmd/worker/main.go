package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluentfocus/backend/internal/config"
	"github.com/fluentfocus/backend/internal/database"
	"github.com/fluentfocus/backend/internal/ingestion"
	"github.com/fluentfocus/backend/internal/lock"
	"github.com/fluentfocus/backend/internal/logger"
	"github.com/fluentfocus/backend/internal/repositories"
	"github.com/fluentfocus/backend/internal/services"
	"github.com/fluentfocus/backend/internal/tasks"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}
	if !cfg.RedisEnabled() {
		log.Fatalf("REDIS_HOST is required for the worker\n")
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting FluentFocus worker")

	// Connect to database
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(connectCtx, cfg.DSN())
	cancelConnect()
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	wordRepo := repositories.NewWordRepository(db)
	ingester := ingestion.NewFromConfig(cfg.Ingestion, wordRepo, logger.Logger)
	seedService := services.NewSeedService(wordRepo, ingester, lock.NewRedisLocker(rdb, lock.DefaultKey, lock.DefaultTTL), logger.Logger)

	// Create Asynq server. One refresh at a time is all the dictionary API tolerates.
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				tasks.QueueDefault: 1,
			},
		},
	)

	// Register task handlers
	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeWordsRefresh, tasks.NewRefreshHandler(seedService, logger.Logger))

	// Start worker
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Logger.Fatal("Failed to start worker", zap.Error(err))
		}
	}()

	logger.Logger.Info("Worker started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
}

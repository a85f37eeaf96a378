// Command seed fills the word store from the public IELTS and TOEFL lists.
//
// By default every fetched word is refreshed. With -if-empty nothing happens when words already exist.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
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
	"github.com/fluentfocus/backend/internal/models"
	"github.com/fluentfocus/backend/internal/repositories"
	"github.com/fluentfocus/backend/internal/services"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// seeder is implemented by the seed service
type seeder interface {
	Seed(ctx context.Context) (*models.SeedResult, error)
	Refresh(ctx context.Context) (*models.IngestionReport, error)
}

func main() {
	ifEmpty := flag.Bool("if-empty", false, "only seed when the word store is empty")
	flag.Parse()

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancelConnect := context.WithTimeout(ctx, 10*time.Second)
	db, err := database.Connect(connectCtx, cfg.DSN())
	cancelConnect()
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Share the lock with the API and worker when Redis is available
	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb, lock.DefaultKey, lock.DefaultTTL)
	}

	wordRepo := repositories.NewWordRepository(db)
	ingester := ingestion.NewFromConfig(cfg.Ingestion, wordRepo, logger.Logger)
	seedService := services.NewSeedService(wordRepo, ingester, locker, logger.Logger)

	if err := run(ctx, seedService, *ifEmpty, os.Stdout); err != nil {
		logger.Logger.Error("Seeding failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run seeds or refreshes the store and prints the outcome to out
func run(ctx context.Context, s seeder, ifEmpty bool, out io.Writer) error {
	var report *models.IngestionReport
	if ifEmpty {
		result, err := s.Seed(ctx)
		if err != nil {
			return err
		}
		if result.Skipped {
			fmt.Fprintf(out, "Database already seeded with %d words, nothing to do\n", result.ExistingWords)
			return nil
		}
		report = result.Report
	} else {
		var err error
		report, err = s.Refresh(ctx)
		if err != nil {
			if errors.Is(err, models.ErrSeedInProgress) {
				return fmt.Errorf("another seeding run holds the lock: %w", err)
			}
			return err
		}
	}

	fmt.Fprintf(out, "Seeding complete: %d fetched, %d saved (%d new, %d updated), %d failed\n",
		report.TotalFetched, report.Enriched, report.Created, report.Updated, report.Failed)
	if report.UsedFallback {
		fmt.Fprintln(out, "No word list could be fetched, the built-in sample words were used")
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

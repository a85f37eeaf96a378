package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fluentfocus/backend/internal/lock"
	"github.com/fluentfocus/backend/internal/models"
	"go.uber.org/zap"
)

// WordCounter reports how many words are stored
type WordCounter interface {
	Count(ctx context.Context) (int, error)
}

// Ingester runs one ingestion pass
type Ingester interface {
	Run(ctx context.Context) (*models.IngestionReport, error)
}

type seedService struct {
	words    WordCounter
	ingester Ingester
	locker   lock.Locker
	logger   *zap.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(words WordCounter, ingester Ingester, locker lock.Locker, logger *zap.Logger) *seedService {
	return &seedService{
		words:    words,
		ingester: ingester,
		locker:   locker,
		logger:   logger,
	}
}

// Seed runs ingestion only when the word store is empty.
//
// A non-empty store yields a skipped result without any writes.
func (s *seedService) Seed(ctx context.Context) (*models.SeedResult, error) {
	count, err := s.words.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count words", zap.Error(err))
		return nil, fmt.Errorf("failed to count words: %w", err)
	}
	if count > 0 {
		s.logger.Info("Skipping seed, words already exist", zap.Int("existing_words", count))
		return &models.SeedResult{Skipped: true, ExistingWords: count}, nil
	}

	report, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &models.SeedResult{Report: report}, nil
}

// Refresh runs ingestion regardless of the store contents.
//
// Only one run can hold the seed lock; a concurrent call fails with models.ErrSeedInProgress.
func (s *seedService) Refresh(ctx context.Context) (*models.IngestionReport, error) {
	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, models.ErrSeedInProgress
		}
		return nil, fmt.Errorf("failed to acquire seed lock: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release seed lock", zap.Error(err))
		}
	}()

	s.logger.Info("Starting word ingestion")
	report, err := s.ingester.Run(ctx)
	if err != nil {
		s.logger.Error("word ingestion interrupted", zap.Error(err))
		return nil, fmt.Errorf("failed to ingest words: %w", err)
	}
	return report, nil
}

// Package tasks defines the background jobs processed by the worker.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fluentfocus/backend/internal/models"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// TypeWordsRefresh re-runs ingestion over the word store
	TypeWordsRefresh = "words:refresh"
	// QueueDefault is the queue every task goes to
	QueueDefault = "default"

	// refreshUniqueTTL keeps a second refresh from being queued while one is pending
	refreshUniqueTTL = time.Hour
	refreshTimeout   = 30 * time.Minute
)

// RefreshPayload is the payload of a words:refresh task
type RefreshPayload struct {
	// Trigger names who asked for the refresh, e.g. "scheduler"
	Trigger string `json:"trigger"`
}

// NewWordsRefreshTask builds a words:refresh task
func NewWordsRefreshTask(trigger string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{Trigger: trigger})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh payload: %w", err)
	}
	return asynq.NewTask(TypeWordsRefresh, payload), nil
}

// RefreshOptions returns the enqueue options of a words:refresh task
func RefreshOptions() []asynq.Option {
	return []asynq.Option{
		asynq.Queue(QueueDefault),
		asynq.Unique(refreshUniqueTTL),
		asynq.MaxRetry(1),
		asynq.Timeout(refreshTimeout),
	}
}

// Enqueuer is satisfied by *asynq.Client
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EnqueueRefresh queues a words:refresh task.
// asynq.ErrDuplicateTask is returned when an identical task is already pending.
func EnqueueRefresh(ctx context.Context, enq Enqueuer, trigger string) (*asynq.TaskInfo, error) {
	task, err := NewWordsRefreshTask(trigger)
	if err != nil {
		return nil, err
	}
	info, err := enq.EnqueueContext(ctx, task, RefreshOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s: %w", TypeWordsRefresh, err)
	}
	return info, nil
}

// Refresher runs an unconditional ingestion
type Refresher interface {
	Refresh(ctx context.Context) (*models.IngestionReport, error)
}

// RefreshHandler processes words:refresh tasks
type RefreshHandler struct {
	refresher Refresher
	logger    *zap.Logger
}

// NewRefreshHandler creates a new refresh task handler
func NewRefreshHandler(refresher Refresher, logger *zap.Logger) *RefreshHandler {
	return &RefreshHandler{
		refresher: refresher,
		logger:    logger,
	}
}

// ProcessTask implements asynq.Handler.
//
// A run already holding the seed lock is doing the same work, so the task succeeds without retry.
func (h *RefreshHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", TypeWordsRefresh, err, asynq.SkipRetry)
	}

	h.logger.Info("Processing words refresh", zap.String("trigger", payload.Trigger))

	report, err := h.refresher.Refresh(ctx)
	if err != nil {
		if errors.Is(err, models.ErrSeedInProgress) {
			h.logger.Info("Words refresh skipped, another run is in progress", zap.String("trigger", payload.Trigger))
			return nil
		}
		h.logger.Error("Words refresh failed", zap.String("trigger", payload.Trigger), zap.Error(err))
		return err
	}

	h.logger.Info("Words refresh finished",
		zap.String("trigger", payload.Trigger),
		zap.Int("enriched", report.Enriched),
		zap.Int("failed", report.Failed),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
	)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fluentfocus/backend/internal/tasks"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const enqueueTimeout = 10 * time.Second

// Scheduler enqueues a words refresh on a cron schedule
type Scheduler struct {
	cron     *cron.Cron
	enqueuer tasks.Enqueuer
	spec     string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler for the given standard 5-field cron spec
func NewScheduler(enqueuer tasks.Enqueuer, spec string, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		enqueuer: enqueuer,
		spec:     spec,
		logger:   logger,
	}
	if _, err := s.cron.AddFunc(spec, s.enqueueRefresh); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("schedule", s.spec), zap.Time("next_run", s.NextRun()))
}

// Stop stops the scheduler and waits for a running enqueue to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// NextRun returns the next time the refresh will be enqueued
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now())
}

// enqueueRefresh puts a words refresh on the queue
func (s *Scheduler) enqueueRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	info, err := tasks.EnqueueRefresh(ctx, s.enqueuer, "scheduler")
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			s.logger.Info("Words refresh already queued")
			return
		}
		s.logger.Error("Failed to enqueue words refresh", zap.Error(err))
		return
	}
	s.logger.Info("Enqueued words refresh", zap.String("task_id", info.ID))
}

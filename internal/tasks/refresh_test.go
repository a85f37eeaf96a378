package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fluentfocus/backend/internal/models"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockRefresher is a mock implementation of Refresher
type mockRefresher struct {
	report *models.IngestionReport
	err    error
	calls  int
}

func (m *mockRefresher) Refresh(ctx context.Context) (*models.IngestionReport, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockEnqueuer records enqueued tasks
type mockEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.tasks = append(m.tasks, task)
	m.opts = append(m.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type(), Queue: QueueDefault}, nil
}

func TestNewWordsRefreshTask(t *testing.T) {
	task, err := NewWordsRefreshTask("scheduler")

	require.NoError(t, err)
	assert.Equal(t, TypeWordsRefresh, task.Type())

	var payload RefreshPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "scheduler", payload.Trigger)
}

func TestRefreshOptions(t *testing.T) {
	opts := RefreshOptions()

	types := make([]asynq.OptionType, 0, len(opts))
	for _, o := range opts {
		types = append(types, o.Type())
	}
	assert.Contains(t, types, asynq.UniqueOpt)
	assert.Contains(t, types, asynq.MaxRetryOpt)
	assert.Contains(t, types, asynq.QueueOpt)
}

func TestEnqueueRefresh(t *testing.T) {
	t.Run("enqueues", func(t *testing.T) {
		enq := &mockEnqueuer{}

		info, err := EnqueueRefresh(context.Background(), enq, "cli")

		require.NoError(t, err)
		assert.Equal(t, "task-1", info.ID)
		require.Len(t, enq.tasks, 1)
		assert.Equal(t, TypeWordsRefresh, enq.tasks[0].Type())
		assert.Len(t, enq.opts[0], len(RefreshOptions()))
	})

	t.Run("duplicate", func(t *testing.T) {
		enq := &mockEnqueuer{err: asynq.ErrDuplicateTask}

		info, err := EnqueueRefresh(context.Background(), enq, "scheduler")

		assert.Nil(t, info)
		assert.ErrorIs(t, err, asynq.ErrDuplicateTask)
	})
}

func TestRefreshHandler_ProcessTask(t *testing.T) {
	validTask, err := NewWordsRefreshTask("scheduler")
	require.NoError(t, err)

	tests := []struct {
		name          string
		task          *asynq.Task
		refresher     *mockRefresher
		expectedErr   error
		expectedCalls int
		expectError   bool
	}{
		{
			name:          "success",
			task:          validTask,
			refresher:     &mockRefresher{report: &models.IngestionReport{Enriched: 3}},
			expectedCalls: 1,
		},
		{
			name:          "seed already running",
			task:          validTask,
			refresher:     &mockRefresher{err: models.ErrSeedInProgress},
			expectedCalls: 1,
		},
		{
			name:          "refresh failure is retried",
			task:          validTask,
			refresher:     &mockRefresher{err: errors.New("failed to ingest words: context deadline exceeded")},
			expectedCalls: 1,
			expectError:   true,
		},
		{
			name:          "bad payload skips retry",
			task:          asynq.NewTask(TypeWordsRefresh, []byte("{")),
			refresher:     &mockRefresher{},
			expectedErr:   asynq.SkipRetry,
			expectedCalls: 0,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRefreshHandler(tt.refresher, zap.NewNop())

			err := h.ProcessTask(context.Background(), tt.task)

			assert.Equal(t, tt.expectedCalls, tt.refresher.calls)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

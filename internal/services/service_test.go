package services

import (
	"context"
	"time"

	"github.com/fluentfocus/backend/internal/lock"
	"github.com/fluentfocus/backend/internal/models"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user *models.User
	err  error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.ID != id {
		return nil, models.ErrUserNotFound
	}
	return m.user, nil
}

// mockWordRepository is a mock implementation of WordRepository
type mockWordRepository struct {
	words       []models.Word
	count       int
	err         error
	unseenLimit int
	firstLimit  int
	unseenCalls int
}

func (m *mockWordRepository) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockWordRepository) GetFirst(ctx context.Context, limit int) ([]models.Word, error) {
	m.firstLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return head(m.words, limit), nil
}

func (m *mockWordRepository) GetUnseenByUser(ctx context.Context, userID string, limit int) ([]models.Word, error) {
	m.unseenCalls++
	m.unseenLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return head(m.words, limit), nil
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	due     []models.ReviewWord
	err     error
	limit   int
	calls   int
	lastNow time.Time
}

func (m *mockProgressRepository) GetDueForReview(ctx context.Context, userID string, now time.Time, limit int) ([]models.ReviewWord, error) {
	m.calls++
	m.limit = limit
	m.lastNow = now
	if m.err != nil {
		return nil, m.err
	}
	if len(m.due) > limit {
		return m.due[:limit], nil
	}
	return m.due, nil
}

// mockIngester is a mock implementation of Ingester
type mockIngester struct {
	report *models.IngestionReport
	err    error
	runs   int
}

func (m *mockIngester) Run(ctx context.Context) (*models.IngestionReport, error) {
	m.runs++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockLocker is a mock implementation of lock.Locker
type mockLocker struct {
	err      error
	acquired int
	released int
}

func (m *mockLocker) Acquire(ctx context.Context) (lock.Release, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.acquired++
	return func(context.Context) error {
		m.released++
		return nil
	}, nil
}

func head(words []models.Word, limit int) []models.Word {
	if len(words) > limit {
		return words[:limit]
	}
	return words
}

func makeWords(n int) []models.Word {
	words := make([]models.Word, n)
	for i := range words {
		words[i] = models.Word{
			ID:         i + 1,
			Term:       "term" + string(rune('a'+i)),
			ExamType:   models.ExamTypeIELTS,
			Difficulty: models.DifficultyB2,
		}
	}
	return words
}

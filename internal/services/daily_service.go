package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fluentfocus/backend/internal/models"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps read access to the Users table
type UserRepository interface {
	// Method GetByID retrieve a user by its identifier.
	//
	// If no user has the given identifier, models.ErrUserNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// WordRepository is the interface that wraps methods for Words table data access
type WordRepository interface {
	// Method Count returns the number of stored words.
	Count(ctx context.Context) (int, error)
	// Method GetFirst retrieve up to "limit" words in ascending id order.
	//
	// An empty store yields an empty slice, not an error.
	GetFirst(ctx context.Context, limit int) ([]models.Word, error)
	// Method GetUnseenByUser retrieve up to "limit" words that have no progress row for the user, in ascending id order.
	GetUnseenByUser(ctx context.Context, userID string, limit int) ([]models.Word, error)
}

// ProgressRepository is the interface that wraps methods for Progress table data access
type ProgressRepository interface {
	// Method GetDueForReview retrieve up to "limit" words in LEARNING status whose next review is at or before "now".
	//
	// Words are ordered by next review, oldest first.
	GetDueForReview(ctx context.Context, userID string, now time.Time, limit int) ([]models.ReviewWord, error)
}

const (
	// demoBatchSize is the number of words returned to anonymous callers
	demoBatchSize = 10
	demoMessage   = "Demo mode: Random words returned (no user tracking)"
)

type dailyService struct {
	users    UserRepository
	words    WordRepository
	progress ProgressRepository
	now      func() time.Time
	logger   *zap.Logger
}

// NewDailyService creates a new daily selection service
func NewDailyService(users UserRepository, words WordRepository, progress ProgressRepository, logger *zap.Logger) *dailyService {
	return &dailyService{
		users:    users,
		words:    words,
		progress: progress,
		now:      time.Now,
		logger:   logger,
	}
}

// GetDailyWords builds the practice batch of a user.
//
// Half of the daily goal, rounded up, is filled with words the user has never seen.
// The rest is filled with LEARNING words that are due. Short buckets are not an error.
func (s *dailyService) GetDailyWords(ctx context.Context, userID string) (*models.DailySelection, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	selection := &models.DailySelection{
		Words: models.DailyWords{
			NewWords:    []models.DailyWord{},
			ReviewWords: []models.DailyWord{},
		},
		Meta: models.DailyMeta{
			UserID:    user.ID,
			DailyGoal: &user.DailyGoal,
		},
	}

	if user.DailyGoal <= 0 {
		return selection, nil
	}

	newCount, reviewCount := splitGoal(user.DailyGoal)

	newWords, err := s.words.GetUnseenByUser(ctx, user.ID, newCount)
	if err != nil {
		s.logger.Error("failed to get new words", zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to get new words: %w", err)
	}
	for _, w := range newWords {
		selection.Words.NewWords = append(selection.Words.NewWords, models.DailyWord{
			Word:           w,
			ProgressStatus: models.ProgressStatusNew,
		})
	}

	if reviewCount > 0 {
		due, err := s.progress.GetDueForReview(ctx, user.ID, s.now(), reviewCount)
		if err != nil {
			s.logger.Error("failed to get review words", zap.String("user_id", user.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to get review words: %w", err)
		}
		for _, rw := range due {
			nextReview := rw.NextReview
			count := rw.ReviewCount
			selection.Words.ReviewWords = append(selection.Words.ReviewWords, models.DailyWord{
				Word:           rw.Word,
				ProgressStatus: rw.Status,
				NextReview:     &nextReview,
				ReviewCount:    &count,
			})
		}
	}

	selection.Meta.TotalWords = selection.Words.Total()
	return selection, nil
}

// GetDemoWords returns the first words of the store for anonymous callers.
//
// The first half is reported as NEW and the second half as LEARNING.
// An empty store yields models.ErrNoWords.
func (s *dailyService) GetDemoWords(ctx context.Context) (*models.DailySelection, error) {
	words, err := s.words.GetFirst(ctx, demoBatchSize)
	if err != nil {
		s.logger.Error("failed to get demo words", zap.Error(err))
		return nil, fmt.Errorf("failed to get demo words: %w", err)
	}
	if len(words) == 0 {
		return nil, models.ErrNoWords
	}

	half := demoBatchSize / 2
	selection := &models.DailySelection{
		Words: models.DailyWords{
			NewWords:    []models.DailyWord{},
			ReviewWords: []models.DailyWord{},
		},
		Meta: models.DailyMeta{Message: demoMessage},
	}
	for i, w := range words {
		if i < half {
			selection.Words.NewWords = append(selection.Words.NewWords, models.DailyWord{
				Word:           w,
				ProgressStatus: models.ProgressStatusNew,
			})
			continue
		}
		selection.Words.ReviewWords = append(selection.Words.ReviewWords, models.DailyWord{
			Word:           w,
			ProgressStatus: models.ProgressStatusLearning,
		})
	}

	selection.Meta.TotalWords = selection.Words.Total()
	return selection, nil
}

// splitGoal returns ceil(goal/2) new words and floor(goal/2) review words
func splitGoal(goal int) (newCount, reviewCount int) {
	return (goal + 1) / 2, goal / 2
}

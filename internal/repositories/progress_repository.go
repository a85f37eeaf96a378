package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fluentfocus/backend/internal/models"
)

// progressRepository implements ProgressRepository
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// GetDueForReview retrieves up to limit words whose progress row for the user is LEARNING
// and has a next review at or before now, oldest review first
func (r *progressRepository) GetDueForReview(ctx context.Context, userID string, now time.Time, limit int) ([]models.ReviewWord, error) {
	query := fmt.Sprintf(`
		SELECT %s, p.status, p.next_review, p.review_count
		FROM progress p
		JOIN words w ON w.id = p.word_id
		WHERE p.user_id = ? AND p.status = ? AND p.next_review <= ?
		ORDER BY p.next_review ASC, w.id ASC
		LIMIT ?
	`, wordColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, string(models.ProgressStatusLearning), now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query review words: %w", err)
	}
	defer rows.Close()

	reviewWords := []models.ReviewWord{}
	for rows.Next() {
		var status string
		var item models.ReviewWord
		word, err := scanWord(rows, &status, &item.NextReview, &item.ReviewCount)
		if err != nil {
			return nil, err
		}
		item.Word = word
		item.Status = models.ProgressStatus(status)
		reviewWords = append(reviewWords, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reviewWords, nil
}

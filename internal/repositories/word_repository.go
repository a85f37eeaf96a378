package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fluentfocus/backend/internal/models"
)

// wordColumns is the column list shared by every word query, aliased on "w"
const wordColumns = `w.id, w.term, w.translation, w.definition, w.example_sentence, w.audio_url,
		       w.exam_type, w.difficulty, w.created_at, w.updated_at`

// wordRepository implements WordRepository
type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *sql.DB) *wordRepository {
	return &wordRepository{
		db: db,
	}
}

// Count returns the total number of words
func (r *wordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// Upsert inserts a word or, when the term already exists, overwrites its enrichment fields
//
// The outcome is derived from the affected rows count reported by MySQL for
// INSERT ... ON DUPLICATE KEY UPDATE: 1 for an insert, 2 for an update and 0 when nothing changed.
func (r *wordRepository) Upsert(ctx context.Context, word *models.WordUpsert) (models.UpsertOutcome, error) {
	query := `
		INSERT INTO words (term, translation, definition, example_sentence, audio_url, exam_type, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			translation = VALUES(translation),
			definition = VALUES(definition),
			example_sentence = VALUES(example_sentence),
			audio_url = VALUES(audio_url),
			exam_type = VALUES(exam_type),
			difficulty = VALUES(difficulty)
	`

	var audioURL sql.NullString
	if word.AudioURL != nil {
		audioURL = sql.NullString{String: *word.AudioURL, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		word.Term,
		word.Translation,
		word.Definition,
		word.ExampleSentence,
		audioURL,
		string(word.ExamType),
		string(word.Difficulty),
	)
	if err != nil {
		return models.UpsertUnchanged, fmt.Errorf("failed to upsert word %q: %w", word.Term, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.UpsertUnchanged, fmt.Errorf("failed to get affected rows: %w", err)
	}

	switch affected {
	case 1:
		return models.UpsertCreated, nil
	case 2:
		return models.UpsertUpdated, nil
	default:
		return models.UpsertUnchanged, nil
	}
}

// GetFirst retrieves up to limit words in ascending id order
func (r *wordRepository) GetFirst(ctx context.Context, limit int) ([]models.Word, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		ORDER BY w.id ASC
		LIMIT ?
	`, wordColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// GetUnseenByUser retrieves up to limit words the user has no progress row for, in ascending id order
func (r *wordRepository) GetUnseenByUser(ctx context.Context, userID string, limit int) ([]models.Word, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words w
		WHERE NOT EXISTS (SELECT 1 FROM progress p WHERE p.word_id = w.id AND p.user_id = ?)
		ORDER BY w.id ASC
		LIMIT ?
	`, wordColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unseen words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// rowScanner is implemented by *sql.Rows and *sql.Row
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWord scans a single row produced by wordColumns, followed by any extra destinations
func scanWord(row rowScanner, extra ...any) (models.Word, error) {
	var word models.Word
	var audioURL sql.NullString
	var examType, difficulty string

	dest := []any{
		&word.ID,
		&word.Term,
		&word.Translation,
		&word.Definition,
		&word.ExampleSentence,
		&audioURL,
		&examType,
		&difficulty,
		&word.CreatedAt,
		&word.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return models.Word{}, fmt.Errorf("failed to scan word: %w", err)
	}

	if audioURL.Valid {
		word.AudioURL = &audioURL.String
	}
	word.ExamType = models.ExamType(examType)
	word.Difficulty = models.Difficulty(difficulty)
	return word, nil
}

func scanWords(rows *sql.Rows) ([]models.Word, error) {
	words := []models.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

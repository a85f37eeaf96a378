package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	testCreatedAt = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	testUpdatedAt = time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC)
)

// wordColumnNames are the column names returned by queries built on wordColumns
var wordColumnNames = []string{
	"id", "term", "translation", "definition", "example_sentence", "audio_url",
	"exam_type", "difficulty", "created_at", "updated_at",
}

// setupMockDB creates a mock database and a cleanup function
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fluentfocus/backend/internal/config"
	"github.com/fluentfocus/backend/internal/database"
	"github.com/fluentfocus/backend/internal/handlers"
	"github.com/fluentfocus/backend/internal/ingestion"
	"github.com/fluentfocus/backend/internal/lock"
	"github.com/fluentfocus/backend/internal/models"
	"github.com/fluentfocus/backend/internal/repositories"
	"github.com/fluentfocus/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testDB     *sql.DB
	testLogger *zap.Logger
)

// TestMain connects to the test database and applies migrations.
// Without TEST_DB_* configuration every test in the package is skipped.
func TestMain(m *testing.M) {
	var err error
	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}
	if !cfg.IsComplete() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	testDB, err = database.Connect(ctx, cfg.DSN())
	cancel()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to test database: %v", err))
	}

	if err := database.RunMigrations(testDB); err != nil {
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	if testDB == nil {
		t.Skip("Skipping integration tests, TEST_DB_* is not configured")
	}
}

// resetTables empties every table and restarts word ids at 1
func resetTables(t *testing.T) {
	t.Helper()
	for _, stmt := range []string{
		"DELETE FROM progress",
		"DELETE FROM users",
		"DELETE FROM words",
		"ALTER TABLE words AUTO_INCREMENT = 1",
	} {
		_, err := testDB.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}

// seedWords inserts n words named word01..wordNN
func seedWords(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := testDB.Exec(`
			INSERT INTO words (term, translation, definition, example_sentence, audio_url, exam_type, difficulty)
			VALUES (?, ?, ?, ?, NULL, 'IELTS', 'B2')`,
			fmt.Sprintf("word%02d", i), "çeviri", "a definition", "an example",
		)
		require.NoError(t, err)
	}
}

func setupTestRouter(ingester services.Ingester) chi.Router {
	wordRepo := repositories.NewWordRepository(testDB)
	userRepo := repositories.NewUserRepository(testDB)
	progressRepo := repositories.NewProgressRepository(testDB)

	dailyService := services.NewDailyService(userRepo, wordRepo, progressRepo, testLogger)
	seedService := services.NewSeedService(wordRepo, ingester, lock.NewLocalLocker(), testLogger)

	r := chi.NewRouter()
	handlers.NewDailyHandler(dailyService, testLogger).RegisterRoutes(r)
	handlers.NewSeedHandler(seedService, nil, testLogger).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func termsOf(t *testing.T, bucket any) []string {
	t.Helper()
	items, ok := bucket.([]any)
	require.True(t, ok)
	terms := make([]string, 0, len(items))
	for _, item := range items {
		terms = append(terms, item.(map[string]any)["term"].(string))
	}
	return terms
}

func TestIntegration_DailyWords(t *testing.T) {
	requireDB(t)
	resetTables(t)
	defer resetTables(t)

	seedWords(t, 12)
	_, err := testDB.Exec(`INSERT INTO users (id, daily_goal) VALUES ('u1', 10), ('u2', 3), ('u3', 0)`)
	require.NoError(t, err)

	now := time.Now().UTC()
	// u1 has seen words 1..4: two are due, one is due later, one is mastered
	_, err = testDB.Exec(`
		INSERT INTO progress (user_id, word_id, status, next_review, review_count) VALUES
		('u1', 1, 'LEARNING', ?, 2),
		('u1', 2, 'LEARNING', ?, 1),
		('u1', 3, 'LEARNING', ?, 0),
		('u1', 4, 'MASTERED', ?, 5)`,
		now.Add(-time.Hour), now.Add(-2*time.Hour), now.Add(24*time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)

	r := setupTestRouter(nil)

	t.Run("user batch", func(t *testing.T) {
		status, body := get(t, r, "/api/daily?userId=u1")

		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, []string{"word05", "word06", "word07", "word08", "word09"}, termsOf(t, data["newWords"]))
		assert.Equal(t, []string{"word02", "word01"}, termsOf(t, data["reviewWords"]))

		review := data["reviewWords"].([]any)[0].(map[string]any)
		assert.Equal(t, "LEARNING", review["progressStatus"])
		assert.Equal(t, float64(1), review["reviewCount"])

		meta := body["meta"].(map[string]any)
		assert.Equal(t, "u1", meta["userId"])
		assert.Equal(t, float64(10), meta["dailyGoal"])
		assert.Equal(t, float64(7), meta["totalWords"])
	})

	t.Run("odd goal", func(t *testing.T) {
		status, body := get(t, r, "/api/daily?userId=u2")

		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, []string{"word01", "word02"}, termsOf(t, data["newWords"]))
		assert.Empty(t, data["reviewWords"])
	})

	t.Run("zero goal", func(t *testing.T) {
		status, body := get(t, r, "/api/daily?userId=u3")

		require.Equal(t, http.StatusOK, status)
		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(0), meta["totalWords"])
		assert.Equal(t, float64(0), meta["dailyGoal"])
	})

	t.Run("unknown user", func(t *testing.T) {
		status, body := get(t, r, "/api/daily?userId=ghost")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "User not found", body["error"])
	})

	t.Run("demo batch", func(t *testing.T) {
		status, body := get(t, r, "/api/daily")

		require.Equal(t, http.StatusOK, status)
		data := body["data"].(map[string]any)
		assert.Equal(t, []string{"word01", "word02", "word03", "word04", "word05"}, termsOf(t, data["newWords"]))
		assert.Equal(t, []string{"word06", "word07", "word08", "word09", "word10"}, termsOf(t, data["reviewWords"]))
		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(10), meta["totalWords"])
		assert.NotContains(t, meta, "dailyGoal")
	})
}

func TestIntegration_DemoEmptyStore(t *testing.T) {
	requireDB(t)
	resetTables(t)

	status, body := get(t, setupTestRouter(nil), "/api/daily")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No words in database. Please run the seeding script.", body["error"])
}

// newFakeSources serves a word list and dictionary entries for the seed test
func newFakeSources(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ielts.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["abate","candid","qwxz"]`)
	})
	mux.HandleFunc("/toefl.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "diligent\nabate\n")
	})
	mux.HandleFunc("/api/v2/entries/en/", func(w http.ResponseWriter, r *http.Request) {
		term := strings.TrimPrefix(r.URL.Path, "/api/v2/entries/en/")
		if term == "qwxz" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `[{"word":%q,"phonetics":[{"audio":""}],"meanings":[{"partOfSpeech":"adjective","definitions":[{"definition":"about %s"}]}]}]`, term, term)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestIntegration_Seed(t *testing.T) {
	requireDB(t)
	resetTables(t)
	defer resetTables(t)

	server := newFakeSources(t)
	ingester := ingestion.NewFromConfig(config.IngestionConfig{
		DictionaryBaseURL: server.URL,
		PerSourceLimit:    50,
		HTTPTimeout:       time.Second,
		IELTSSourceURL:    server.URL + "/ielts.json",
		TOEFLSourceURL:    server.URL + "/toefl.txt",
	}, repositories.NewWordRepository(testDB), testLogger)
	r := setupTestRouter(ingester)

	status, body := get(t, r, "/api/seed")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	details := body["details"].(map[string]any)
	assert.Equal(t, float64(5), details["totalFetched"])
	assert.Equal(t, float64(4), details["enriched"])
	assert.Equal(t, float64(1), details["failed"])
	assert.Equal(t, float64(3), details["created"])
	assert.Equal(t, float64(1), details["updated"])

	var count int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM words").Scan(&count))
	assert.Equal(t, 3, count)

	var examType, definition, example string
	var audio sql.NullString
	require.NoError(t, testDB.QueryRow(
		"SELECT exam_type, definition, example_sentence, audio_url FROM words WHERE term = 'abate'",
	).Scan(&examType, &definition, &example, &audio))
	assert.Equal(t, "TOEFL", examType)
	assert.Equal(t, "about abate", definition)
	assert.Equal(t, "This is a adjective.", example)
	assert.False(t, audio.Valid)

	t.Run("second call is skipped", func(t *testing.T) {
		status, body := get(t, r, "/api/seed")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Database already seeded with 3 words", body["message"])
		assert.Equal(t, "Words already exist in database", body["skipReason"])
	})
}

func TestIntegration_UpsertTermsDifferingOnlyByAccent(t *testing.T) {
	requireDB(t)
	resetTables(t)
	defer resetTables(t)

	ctx := context.Background()
	repo := repositories.NewWordRepository(testDB)

	for _, term := range []string{"resume", "résumé", "Resume"} {
		outcome, err := repo.Upsert(ctx, &models.WordUpsert{
			Term:            term,
			Translation:     "çeviri",
			Definition:      "definition of " + term,
			ExampleSentence: "an example",
			ExamType:        models.ExamTypeIELTS,
			Difficulty:      models.DifficultyB2,
		})
		require.NoError(t, err, term)
		assert.Equal(t, models.UpsertCreated, outcome, term)
	}

	var count int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM words").Scan(&count))
	assert.Equal(t, 3, count)

	var definition string
	require.NoError(t, testDB.QueryRow("SELECT definition FROM words WHERE term = ?", "résumé").Scan(&definition))
	assert.Equal(t, "definition of résumé", definition)
}

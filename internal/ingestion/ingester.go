// Package ingestion populates the word store from public word lists enriched through the dictionary API.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fluentfocus/backend/internal/dictionary"
	"github.com/fluentfocus/backend/internal/models"
	"github.com/fluentfocus/backend/internal/translation"
	"github.com/fluentfocus/backend/internal/wordlist"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultPerSourceLimit is the number of terms kept from each source
const DefaultPerSourceLimit = 50

// WordRepository defines the write side of the word store used by ingestion
type WordRepository interface {
	// Upsert inserts the word or overwrites the enrichment fields of an existing term
	Upsert(ctx context.Context, word *models.WordUpsert) (models.UpsertOutcome, error)
}

// ListFetcher downloads a word list and returns its lowercase terms
type ListFetcher interface {
	Fetch(ctx context.Context, src wordlist.Source) ([]string, error)
}

// Dictionary looks a term up
type Dictionary interface {
	Lookup(ctx context.Context, term string) (*dictionary.Entry, error)
}

// Options tunes an Ingester
type Options struct {
	// PerSourceLimit caps the terms taken from each source. Zero selects DefaultPerSourceLimit.
	PerSourceLimit int
	// Delay is the pause between the end of one dictionary lookup and the start of the next.
	// Zero disables throttling.
	Delay time.Duration
}

// Ingester runs the sequential fetch, enrich and upsert pipeline
type Ingester struct {
	words          WordRepository
	fetcher        ListFetcher
	dict           Dictionary
	sources        []wordlist.Source
	perSourceLimit int
	delay          time.Duration
	logger         *zap.Logger
}

// candidate is a term waiting for enrichment
type candidate struct {
	term       string
	examType   models.ExamType
	difficulty models.Difficulty
}

// NewIngester creates a new ingester
func NewIngester(words WordRepository, fetcher ListFetcher, dict Dictionary, sources []wordlist.Source, opts Options, logger *zap.Logger) *Ingester {
	if opts.PerSourceLimit <= 0 {
		opts.PerSourceLimit = DefaultPerSourceLimit
	}
	return &Ingester{
		words:          words,
		fetcher:        fetcher,
		dict:           dict,
		sources:        sources,
		perSourceLimit: opts.PerSourceLimit,
		delay:          opts.Delay,
		logger:         logger,
	}
}

// Run fetches every source, enriches each term and upserts it.
//
// A failed source is dropped and a failed term is counted in the report; neither aborts the run.
// When the context is cancelled the partial report is returned together with the context error.
func (i *Ingester) Run(ctx context.Context) (*models.IngestionReport, error) {
	report := &models.IngestionReport{Sources: []models.SourceReport{}}

	candidates := i.collect(ctx, report)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if len(candidates) == 0 {
		i.logger.Warn("No terms fetched from any source, using fallback words")
		report.UsedFallback = true
		for _, fw := range wordlist.FallbackWords() {
			candidates = append(candidates, candidate{
				term:       fw.Term,
				examType:   wordlist.FallbackExamType,
				difficulty: fw.Difficulty,
			})
		}
	}

	i.logger.Info("Processing words", zap.Int("count", len(candidates)))

	pace := newPacer(i.delay)
	for _, c := range candidates {
		if err := pace.wait(ctx); err != nil {
			return report, fmt.Errorf("ingestion interrupted: %w", err)
		}

		entry, err := i.dict.Lookup(ctx, c.term)
		pace.done()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			report.Failed++
			i.logLookupFailure(c.term, err)
			continue
		}

		outcome, err := i.words.Upsert(ctx, buildUpsert(c, entry))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			report.Failed++
			i.logger.Error("Failed to save word", zap.String("term", c.term), zap.Error(err))
			continue
		}

		report.Enriched++
		switch outcome {
		case models.UpsertCreated:
			report.Created++
		case models.UpsertUpdated:
			report.Updated++
		}
		i.logger.Debug("Saved word",
			zap.String("term", c.term),
			zap.String("exam_type", string(c.examType)),
			zap.String("difficulty", string(c.difficulty)),
		)
	}

	i.logger.Info("Ingestion complete",
		zap.Int("total_fetched", report.TotalFetched),
		zap.Int("enriched", report.Enriched),
		zap.Int("failed", report.Failed),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Bool("used_fallback", report.UsedFallback),
	)

	return report, nil
}

// collect fetches every source in order and returns the capped terms
func (i *Ingester) collect(ctx context.Context, report *models.IngestionReport) []candidate {
	var candidates []candidate
	for _, src := range i.sources {
		if ctx.Err() != nil {
			return candidates
		}

		sr := models.SourceReport{Name: src.Name, ExamType: src.ExamType}
		terms, err := i.fetcher.Fetch(ctx, src)
		if err != nil {
			i.logger.Error("Failed to fetch word list",
				zap.String("source", src.Name),
				zap.String("url", src.URL),
				zap.Error(err),
			)
			sr.Error = err.Error()
			report.Sources = append(report.Sources, sr)
			continue
		}

		terms = wordlist.Truncate(terms, i.perSourceLimit)
		sr.Fetched = len(terms)
		report.Sources = append(report.Sources, sr)
		report.TotalFetched += len(terms)

		i.logger.Info("Fetched word list", zap.String("source", src.Name), zap.Int("count", len(terms)))

		for _, term := range terms {
			candidates = append(candidates, candidate{
				term:       term,
				examType:   src.ExamType,
				difficulty: src.DefaultDifficulty,
			})
		}
	}
	return candidates
}

// pacer holds back a lookup until delay has passed since the previous one finished
type pacer struct {
	delay   time.Duration
	limiter *rate.Limiter
}

func newPacer(delay time.Duration) *pacer {
	return &pacer{delay: delay}
}

// done marks the end of a lookup. The single token is spent at once, so the
// next one becomes available delay after this call.
func (p *pacer) done() {
	if p.delay <= 0 {
		return
	}
	p.limiter = rate.NewLimiter(rate.Every(p.delay), 1)
	p.limiter.Allow()
}

func (p *pacer) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

func (i *Ingester) logLookupFailure(term string, err error) {
	var statusErr *dictionary.StatusError
	if errors.As(err, &statusErr) {
		i.logger.Warn("Skipping word, dictionary lookup failed",
			zap.String("term", term),
			zap.Int("status", statusErr.StatusCode),
		)
		return
	}
	i.logger.Warn("Skipping word, dictionary lookup failed", zap.String("term", term), zap.Error(err))
}

// buildUpsert assembles the stored fields of a term from its dictionary entry
func buildUpsert(c candidate, entry *dictionary.Entry) *models.WordUpsert {
	definition, example := dictionary.ExtractDefinitionAndExample(entry.Meanings)
	return &models.WordUpsert{
		Term:            c.term,
		Translation:     translation.Translate(c.term),
		Definition:      definition,
		ExampleSentence: example,
		AudioURL:        dictionary.ExtractAudioURL(entry.Phonetics),
		ExamType:        c.examType,
		Difficulty:      c.difficulty,
	}
}

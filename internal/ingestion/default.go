package ingestion

import (
	"net/http"

	"github.com/fluentfocus/backend/internal/config"
	"github.com/fluentfocus/backend/internal/dictionary"
	"github.com/fluentfocus/backend/internal/wordlist"
	"go.uber.org/zap"
)

// NewFromConfig wires an Ingester against the public word lists and dictionary API
func NewFromConfig(cfg config.IngestionConfig, words WordRepository, logger *zap.Logger) *Ingester {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return NewIngester(
		words,
		wordlist.NewFetcher(httpClient),
		dictionary.NewClient(cfg.DictionaryBaseURL, httpClient),
		wordlist.DefaultSources(cfg.IELTSSourceURL, cfg.TOEFLSourceURL),
		Options{
			PerSourceLimit: cfg.PerSourceLimit,
			Delay:          cfg.Delay,
		},
		logger,
	)
}

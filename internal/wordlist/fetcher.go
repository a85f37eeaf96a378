package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxListSize caps the body read from a list source
const maxListSize = 10 * 1024 * 1024 // 10MB

// Fetcher downloads and parses word lists over HTTP
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher using the given HTTP client
func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{httpClient: httpClient}
}

// Fetch downloads the source list and parses it into lowercase terms.
// Network failures and non-2xx answers are returned as errors.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", src.Name, err)
	}
	req.Header.Set("User-Agent", "fluentfocus-ingest")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s word list: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s word list: HTTP %d", src.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s word list: %w", src.Name, err)
	}

	terms, err := Parse(body, src.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s word list: %w", src.Name, err)
	}
	return terms, nil
}

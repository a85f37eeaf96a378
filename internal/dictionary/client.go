// Package dictionary looks terms up in the public Free Dictionary API
// (https://dictionaryapi.dev) and extracts the fields the word store keeps.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const userAgent = "fluentfocus-ingest"

// Phonetic is a pronunciation entry
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Definition is a single sense of a meaning
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// Meaning groups definitions by part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Entry is one element of the lookup response array
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls"`
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Term       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary lookup for %q returned status %d", e.Term, e.StatusCode)
}

// Client queries the dictionary API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a dictionary client for the API rooted at baseURL
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Lookup fetches the first entry for the exact term
//
// A non-2xx answer is reported as *StatusError; an empty array is an error as well.
func (c *Client) Lookup(ctx context.Context, term string) (*Entry, error) {
	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, url.PathEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup for %q failed: %w", term, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Term: term, StatusCode: resp.StatusCode}
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response for %q: %w", term, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary returned no entries for %q", term)
	}

	return &entries[0], nil
}

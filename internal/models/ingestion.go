package models

// SourceReport holds the outcome of fetching one word list source
type SourceReport struct {
	Name     string   `json:"name"`
	ExamType ExamType `json:"examType"`
	Fetched  int      `json:"fetched"`
	Error    string   `json:"error,omitempty"`
}

// IngestionReport holds the counters of an ingestion run
type IngestionReport struct {
	Sources      []SourceReport `json:"sources"`
	TotalFetched int            `json:"totalFetched"`
	Enriched     int            `json:"enriched"`
	Failed       int            `json:"failed"`
	Created      int            `json:"created"`
	Updated      int            `json:"updated"`
	UsedFallback bool           `json:"usedFallback"`
}

// SeedResult is the result of a conditional seed
type SeedResult struct {
	// Skipped is set when the store already held words; Report is nil in that case
	Skipped       bool
	ExistingWords int
	Report        *IngestionReport
}

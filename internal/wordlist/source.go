// Package wordlist fetches public vocabulary lists and parses them into terms.
package wordlist

import "github.com/fluentfocus/backend/internal/models"

// Format tells the parser how to read a list body
type Format string

const (
	// FormatAuto sniffs the body: a leading '[' or '{' means JSON, anything else is text
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

const (
	// DefaultIELTSURL is the IELTS 1200 word list
	DefaultIELTSURL = "https://raw.githubusercontent.com/Aynaabaj/IELTS-1200-Words-Practice/master/src/assets/data/words.json"
	// DefaultTOEFLURL is the first list of the Wang Yumei TOEFL vocabulary
	DefaultTOEFLURL = "https://raw.githubusercontent.com/ladrift/toefl/master/list_01.txt"
)

// Source describes a word list to ingest
type Source struct {
	Name              string
	URL               string
	Format            Format
	ExamType          models.ExamType
	DefaultDifficulty models.Difficulty
}

// DefaultSources returns the IELTS and TOEFL sources. Empty URLs select the defaults.
func DefaultSources(ieltsURL, toeflURL string) []Source {
	if ieltsURL == "" {
		ieltsURL = DefaultIELTSURL
	}
	if toeflURL == "" {
		toeflURL = DefaultTOEFLURL
	}
	return []Source{
		{
			Name:              "ielts",
			URL:               ieltsURL,
			Format:            FormatJSON,
			ExamType:          models.ExamTypeIELTS,
			DefaultDifficulty: models.DifficultyB2,
		},
		{
			Name:              "toefl",
			URL:               toeflURL,
			Format:            FormatText,
			ExamType:          models.ExamTypeTOEFL,
			DefaultDifficulty: models.DifficultyC1,
		},
	}
}

// FallbackWord is a term ingested when no source yields anything
type FallbackWord struct {
	Term       string
	Difficulty models.Difficulty
}

// FallbackExamType is the exam type given to fallback words
const FallbackExamType = models.ExamTypeTOEFL

// FallbackWords returns the built-in sample list
func FallbackWords() []FallbackWord {
	return []FallbackWord{
		{Term: "abate", Difficulty: models.DifficultyB2},
		{Term: "benevolent", Difficulty: models.DifficultyC1},
		{Term: "candid", Difficulty: models.DifficultyB2},
		{Term: "diligent", Difficulty: models.DifficultyB2},
		{Term: "ephemeral", Difficulty: models.DifficultyC1},
	}
}

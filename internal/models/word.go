package models

import "time"

// ExamType is the standardized test a word is associated with
type ExamType string

const (
	ExamTypeIELTS ExamType = "IELTS"
	ExamTypeTOEFL ExamType = "TOEFL"
)

// IsValid reports whether e is a known exam type
func (e ExamType) IsValid() bool {
	return e == ExamTypeIELTS || e == ExamTypeTOEFL
}

// Difficulty is a CEFR level
type Difficulty string

const (
	DifficultyA1 Difficulty = "A1"
	DifficultyA2 Difficulty = "A2"
	DifficultyB1 Difficulty = "B1"
	DifficultyB2 Difficulty = "B2"
	DifficultyC1 Difficulty = "C1"
	DifficultyC2 Difficulty = "C2"
)

// IsValid reports whether d is a known CEFR level
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyA1, DifficultyA2, DifficultyB1, DifficultyB2, DifficultyC1, DifficultyC2:
		return true
	}
	return false
}

// Word represents a vocabulary entry. Term is the lowercase natural key.
type Word struct {
	ID              int        `json:"id"`
	Term            string     `json:"term"`
	Translation     string     `json:"translation"`
	Definition      string     `json:"definition"`
	ExampleSentence string     `json:"exampleSentence"`
	AudioURL        *string    `json:"audioUrl"`
	ExamType        ExamType   `json:"examType"`
	Difficulty      Difficulty `json:"difficulty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// WordUpsert holds the fields written by ingestion for a single term
type WordUpsert struct {
	Term            string
	Translation     string
	Definition      string
	ExampleSentence string
	AudioURL        *string
	ExamType        ExamType
	Difficulty      Difficulty
}

// UpsertOutcome tells whether an upsert inserted a new row, changed an existing one, or left it untouched
type UpsertOutcome int

const (
	UpsertUnchanged UpsertOutcome = iota
	UpsertCreated
	UpsertUpdated
)

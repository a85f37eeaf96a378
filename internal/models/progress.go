package models

import "time"

// ProgressStatus is the learning state of a word for a user
type ProgressStatus string

const (
	ProgressStatusNew      ProgressStatus = "NEW"
	ProgressStatusLearning ProgressStatus = "LEARNING"
	ProgressStatusMastered ProgressStatus = "MASTERED"
)

// Progress is the per-user, per-word learning state
type Progress struct {
	ID          int            `json:"id"`
	UserID      string         `json:"userId"`
	WordID      int            `json:"wordId"`
	Status      ProgressStatus `json:"status"`
	NextReview  time.Time      `json:"nextReview"`
	ReviewCount int            `json:"reviewCount"`
}

// ReviewWord is a word that is due for review together with the user's progress row
type ReviewWord struct {
	Word
	Status      ProgressStatus
	NextReview  time.Time
	ReviewCount int
}

package models

import "time"

// DailyWord is a word in a daily practice batch
type DailyWord struct {
	Word
	ProgressStatus ProgressStatus `json:"progressStatus"`
	NextReview     *time.Time     `json:"nextReview,omitempty"`
	ReviewCount    *int           `json:"reviewCount,omitempty"`
}

// DailyWords is a daily batch split into new and review buckets
type DailyWords struct {
	NewWords    []DailyWord `json:"newWords"`
	ReviewWords []DailyWord `json:"reviewWords"`
}

// Total returns the number of words in both buckets
func (d *DailyWords) Total() int {
	return len(d.NewWords) + len(d.ReviewWords)
}

// DailyMeta describes a daily batch. UserID and DailyGoal are set for user batches only.
type DailyMeta struct {
	UserID     string `json:"userId,omitempty"`
	DailyGoal  *int   `json:"dailyGoal,omitempty"`
	Message    string `json:"message,omitempty"`
	TotalWords int    `json:"totalWords"`
}

// DailySelection is the result of a daily word selection
type DailySelection struct {
	Words DailyWords
	Meta  DailyMeta
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExamType_IsValid(t *testing.T) {
	assert.True(t, ExamTypeIELTS.IsValid())
	assert.True(t, ExamTypeTOEFL.IsValid())
	assert.False(t, ExamType("SAT").IsValid())
	assert.False(t, ExamType("").IsValid())
}

func TestDifficulty_IsValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyA1, DifficultyA2, DifficultyB1, DifficultyB2, DifficultyC1, DifficultyC2} {
		assert.True(t, d.IsValid(), string(d))
	}
	assert.False(t, Difficulty("D1").IsValid())
	assert.False(t, Difficulty("b2").IsValid())
}

func TestDailyWords_Total(t *testing.T) {
	words := DailyWords{
		NewWords:    []DailyWord{{Word: Word{ID: 1}}, {Word: Word{ID: 2}}},
		ReviewWords: []DailyWord{{Word: Word{ID: 3}}},
	}
	assert.Equal(t, 3, words.Total())
	assert.Equal(t, 0, (&DailyWords{}).Total())
}

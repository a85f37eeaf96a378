package models

// DefaultDailyGoal is the daily goal given to users by the schema
const DefaultDailyGoal = 10

// User is a learner. Users are created outside of this service.
type User struct {
	ID        string `json:"id"`
	DailyGoal int    `json:"dailyGoal"`
}

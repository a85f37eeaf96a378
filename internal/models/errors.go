package models

import "errors"

var (
	// ErrUserNotFound is returned when a user id does not match any user
	ErrUserNotFound = errors.New("user not found")
	// ErrNoWords is returned when the word store is empty
	ErrNoWords = errors.New("no words in database")
	// ErrSeedInProgress is returned when another ingestion run holds the seed lock
	ErrSeedInProgress = errors.New("seeding already in progress")
)

// Package lock provides the single-run guard around ingestion.
package lock

import (
	"context"
	"errors"
	"sync"
)

// ErrLocked is returned by Acquire when another holder owns the lock
var ErrLocked = errors.New("lock is held by another process")

// Release gives the lock back
type Release func(ctx context.Context) error

// Locker hands out a non-blocking exclusive lock
type Locker interface {
	// Acquire takes the lock or fails immediately with ErrLocked
	Acquire(ctx context.Context) (Release, error)
}

// LocalLocker is an in-process Locker for deployments without Redis
type LocalLocker struct {
	mu sync.Mutex
}

// NewLocalLocker creates a new in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

// Acquire implements Locker
func (l *LocalLocker) Acquire(ctx context.Context) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !l.mu.TryLock() {
		return nil, ErrLocked
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}, nil
}

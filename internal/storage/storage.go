// Package storage persists saved window streams, keyed by window name.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrStateNotFound is returned when no state is stored under a name.
var ErrStateNotFound = errors.New("window state not found")

// Entry describes one stored window state.
type Entry struct {
	Name      string
	Size      int
	UpdatedAt time.Time
}

// Store saves and loads opaque window state streams.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

package snapshots

import (
	"context"
	"errors"
)

// ErrNotFound marks a resource that has never been saved. Callers treat it
// as empty initial state.
var ErrNotFound = errors.New("snapshot not found")

// Backend persists named snapshots. Save replaces the whole resource and must
// never expose a partially written value to a concurrent Load.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// IsNotFound reports whether err marks a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Package state defines the backend-agnostic persistence boundary for the task
// collection. The whole collection is loaded and saved as one unit; there are
// no partial or incremental updates.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var (
	// ErrNotFound is returned by Load when no state has been initialised yet.
	ErrNotFound = errors.New("state not found")

	// ErrMalformed is returned by Load when the stored document is not a
	// mapping of title to status token.
	ErrMalformed = errors.New("malformed state")
)

// Collection maps task titles to their persisted status tokens.
type Collection map[string]string

// Clone returns a copy of c that can be modified independently.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Titles returns the collection's titles in sorted order.
func (c Collection) Titles() []string {
	titles := make([]string, 0, len(c))
	for title := range c {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Store loads and saves the complete task collection.
type Store interface {
	// Load returns the full collection.
	// Returns ErrNotFound if the store has never been initialised.
	Load(ctx context.Context) (Collection, error)

	// Save replaces the stored collection with c.
	Save(ctx context.Context, c Collection) error
}

// Initializer is implemented by stores that can create an empty collection.
type Initializer interface {
	// Init creates an empty collection if none exists.
	// Reports whether anything was created.
	Init(ctx context.Context) (bool, error)
}

// Error describes a failed store operation.
type Error struct {
	Op   string // "read", "decode", "write", "query"...
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Open returns the store implementation for backend, rooted at path.
func Open(backend, path string, logger *slog.Logger) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewJSONFile(path, logger), nil
	case BackendSQLite:
		return NewSQLite(path, logger)
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

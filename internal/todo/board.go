package todo

import (
	"context"
	"fmt"
	"log/slog"

	"todo/internal/state"
)

// Board is a task collection loaded from a store.
// Every mutation rewrites the whole collection through the same store.
// A Board lives for a single command; it is never cached between runs.
type Board struct {
	store  state.Store
	items  state.Collection
	logger *slog.Logger
}

// Load reads the collection from store.
func Load(ctx context.Context, store state.Store, logger *slog.Logger) (*Board, error) {
	items, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = state.Collection{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Board{store: store, items: items, logger: logger}, nil
}

// Has reports whether title is recorded.
func (b *Board) Has(title string) bool {
	_, ok := b.items[title]
	return ok
}

// Len returns the number of recorded tasks.
func (b *Board) Len() int { return len(b.items) }

// Lookup returns the status of title. Titles that are not recorded are
// Pending. A recorded token other than DONE/PENDING is an
// *InvalidStatusError.
func (b *Board) Lookup(title string) (Status, error) {
	token, ok := b.items[title]
	if !ok {
		return Pending, nil
	}
	status, err := ParseStatus(token)
	if err != nil {
		return 0, &InvalidStatusError{Title: title, Token: token}
	}
	return status, nil
}

// Records returns every recorded task ordered by title.
func (b *Board) Records() ([]Record, error) {
	titles := b.items.Titles()
	records := make([]Record, 0, len(titles))
	for _, title := range titles {
		status, err := b.Lookup(title)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Title: title, Status: status})
	}
	return records, nil
}

func (b *Board) set(ctx context.Context, title string, status Status) error {
	if title == "" {
		return ErrTitleRequired
	}
	next := b.items.Clone()
	next[title] = status.String()
	if err := b.commit(ctx, next); err != nil {
		return fmt.Errorf("set %q to %s: %w", title, status, err)
	}
	b.logger.Debug("task updated", "title", title, "status", status.String())
	return nil
}

func (b *Board) remove(ctx context.Context, title string) error {
	if !b.Has(title) {
		return nil
	}
	next := b.items.Clone()
	delete(next, title)
	if err := b.commit(ctx, next); err != nil {
		return fmt.Errorf("delete %q: %w", title, err)
	}
	b.logger.Debug("task deleted", "title", title)
	return nil
}

// commit saves next and adopts it only once the store accepted it, so a
// failed save leaves the board as it was.
func (b *Board) commit(ctx context.Context, next state.Collection) error {
	if err := b.store.Save(ctx, next); err != nil {
		return err
	}
	b.items = next
	return nil
}

package todo

import "context"

// Record is a task's title and status as held by the collection.
type Record struct {
	Title  string
	Status Status
}

// Task is the behaviour shared by every typed variant.
// Variants are obtained from Build; the concrete type decides which of
// Creator and Deleter are also available.
type Task interface {
	Title() string
	Status() Status
	Getter
	Editor
}

// Creator records a new title in the collection.
// Only PendingTask implements it.
type Creator interface {
	// Create records the task as PENDING if its title is not in the
	// collection yet. An existing entry is left untouched and nothing is saved.
	Create(ctx context.Context, b *Board) error
}

// Getter reads a task's current state.
type Getter interface {
	// Get returns the title and status currently held by the board.
	// A title missing from the collection is reported as Pending.
	Get(b *Board) (Record, error)
}

// Editor moves a task between Pending and Done.
// Both methods persist the whole collection before returning. The receiver
// itself is not changed; build a new variant to observe the new status.
type Editor interface {
	SetToDone(ctx context.Context, b *Board) error
	SetToPending(ctx context.Context, b *Board) error
}

// Deleter removes a task from the collection.
// Only DoneTask implements it.
type Deleter interface {
	// Delete removes the title and saves. Removing an absent title is a no-op.
	Delete(ctx context.Context, b *Board) error
}

// base holds the fields and capabilities common to both variants.
type base struct {
	title  string
	status Status
}

func (t base) Title() string  { return t.title }
func (t base) Status() Status { return t.status }

func (t base) Get(b *Board) (Record, error) {
	status, err := b.Lookup(t.title)
	if err != nil {
		return Record{}, err
	}
	return Record{Title: t.title, Status: status}, nil
}

func (t base) SetToDone(ctx context.Context, b *Board) error {
	return b.set(ctx, t.title, Done)
}

func (t base) SetToPending(ctx context.Context, b *Board) error {
	return b.set(ctx, t.title, Pending)
}

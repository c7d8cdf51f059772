package todo

import "context"

var (
	_ Task    = PendingTask{}
	_ Creator = PendingTask{}
	_ Task    = DoneTask{}
	_ Deleter = DoneTask{}
)

// PendingTask is a task that has not been finished.
// It can be created, read and edited, but not deleted.
type PendingTask struct {
	base
}

// Create implements Creator.
func (t PendingTask) Create(ctx context.Context, b *Board) error {
	if t.title == "" {
		return ErrTitleRequired
	}
	if b.Has(t.title) {
		return nil
	}
	return b.set(ctx, t.title, Pending)
}

// DoneTask is a finished task.
// It can be read, edited and deleted, but not created.
type DoneTask struct {
	base
}

// Delete implements Deleter.
func (t DoneTask) Delete(ctx context.Context, b *Board) error {
	return b.remove(ctx, t.title)
}

// Build returns the variant matching status. It is the only way to obtain a
// Task; every Status maps to exactly one variant.
func Build(title string, status Status) Task {
	if status == Done {
		return DoneTask{base{title: title, status: Done}}
	}
	return PendingTask{base{title: title, status: Pending}}
}

package todo

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Action is a command token understood by Process.
type Action string

const (
	ActionCreate  Action = "create"
	ActionGet     Action = "get"
	ActionEdit    Action = "edit" // toggles between pending and done
	ActionDone    Action = "done"
	ActionPending Action = "pending"
	ActionDelete  Action = "delete"
)

// Actions lists every action in help order.
var Actions = []Action{ActionCreate, ActionGet, ActionEdit, ActionDone, ActionPending, ActionDelete}

// Result describes what Process did.
type Result struct {
	Action Action
	// Before is the task as resolved before the action ran.
	Before Record
	// After is the task as held by the board once the action finished.
	After Record
	// Saved reports whether the collection was written back.
	Saved bool
}

// Process resolves title on the board, builds the matching variant and runs
// action on it. Actions the variant does not support fail with an
// *UnsupportedError and leave the collection untouched.
func Process(ctx context.Context, b *Board, action Action, title string) (Result, error) {
	if title == "" {
		return Result{}, ErrTitleRequired
	}
	if !utf8.ValidString(title) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}

	status, err := b.Lookup(title)
	if err != nil {
		return Result{}, err
	}
	task := Build(title, status)
	res := Result{Action: action, Before: Record{Title: title, Status: status}}

	b.logger.Debug("dispatch", "action", string(action), "title", title, "status", status.String())

	switch action {
	case ActionCreate:
		c, ok := task.(Creator)
		if !ok {
			return res, unsupported(action, task)
		}
		existed := b.Has(title)
		if err := c.Create(ctx, b); err != nil {
			return res, err
		}
		res.Saved = !existed

	case ActionGet:
		// read only

	case ActionEdit:
		if task.Status() == Pending {
			err = task.SetToDone(ctx, b)
		} else {
			err = task.SetToPending(ctx, b)
		}
		if err != nil {
			return res, err
		}
		res.Saved = true

	case ActionDone:
		if err := task.SetToDone(ctx, b); err != nil {
			return res, err
		}
		res.Saved = true

	case ActionPending:
		if err := task.SetToPending(ctx, b); err != nil {
			return res, err
		}
		res.Saved = true

	case ActionDelete:
		d, ok := task.(Deleter)
		if !ok {
			return res, unsupported(action, task)
		}
		existed := b.Has(title)
		if err := d.Delete(ctx, b); err != nil {
			return res, err
		}
		res.Saved = existed

	default:
		return res, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	after, err := task.Get(b)
	if err != nil {
		return res, err
	}
	res.After = after
	return res, nil
}

func unsupported(action Action, task Task) error {
	return &UnsupportedError{Action: action, Title: task.Title(), Status: task.Status()}
}

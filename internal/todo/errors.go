package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus matches every *InvalidStatusError.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrUnsupported matches every *UnsupportedError.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnknownAction is returned by Process for unrecognised actions.
	ErrUnknownAction = errors.New("unknown action")

	// ErrTitleRequired is returned when an operation is given an empty title.
	ErrTitleRequired = errors.New("title required")

	// ErrInvalidTitle is returned for titles that are not valid UTF-8.
	// Such titles would not be stored byte for byte.
	ErrInvalidTitle = errors.New("title is not valid UTF-8")
)

// InvalidStatusError reports a status token outside DONE/PENDING.
// It means the persisted collection is corrupt, not that the user typed
// something wrong.
type InvalidStatusError struct {
	Title string // empty when the token was parsed outside a collection
	Token string
}

func (e *InvalidStatusError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("invalid status %q", e.Token)
	}
	return fmt.Sprintf("invalid status %q for task %q", e.Token, e.Title)
}

// Is reports whether target is ErrInvalidStatus.
func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

// UnsupportedError reports an action the task's current variant does not allow,
// such as deleting a pending task.
type UnsupportedError struct {
	Action Action
	Title  string
	Status Status
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("cannot %s task %q: task is %s", e.Action, e.Title, e.Status)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/state"
	"todo/internal/todo"
)

// report prints err in the CLI's "error: ..." form and returns the exit code
// for its kind.
func report(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, todo.ErrTitleRequired):
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	case errors.Is(err, todo.ErrInvalidTitle):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, ErrInvalidTaskRef), errors.Is(err, ErrTaskRefOutOfRange):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, state.ErrNotFound):
		fmt.Fprintf(errOut, "error: %v (run: todo init)\n", err)
		return exitcode.UserError
	case errors.Is(err, todo.ErrUnsupported), errors.Is(err, todo.ErrUnknownAction):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, todo.ErrInvalidStatus):
		fmt.Fprintf(errOut, "error: corrupt state: %v\n", err)
		return exitcode.CorruptState
	default:
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
}

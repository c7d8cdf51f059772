// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error: bad args, unknown command, an action
	// the task's current state does not allow, or an uninitialised store.
	UserError = 1

	// CorruptState indicates the stored collection holds an invalid status.
	CorruptState = 2

	// StoreError indicates the state could not be read or written.
	StoreError = 3
)

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/state"
	"todo/internal/todo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	status string
}

// SetStatus restricts the listing to one status token (for testing).
func (c *ListCmd) SetStatus(token string) {
	c.status = token
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--status DONE|PENDING]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st state.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	var only *todo.Status
	if c.status != "" {
		s, err := todo.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		only = &s
	}

	board, err := todo.Load(ctx, st, cfg.Logger())
	if err != nil {
		return report(errOut, err)
	}

	records, err := listing(board)
	if err != nil {
		return report(errOut, err)
	}

	// Numbers follow the full listing so #n references stay valid when a
	// status filter is applied.
	printed := 0
	var section *todo.Status
	for i, rec := range records {
		if only != nil && rec.Status != *only {
			continue
		}
		if section == nil || *section != rec.Status {
			s := rec.Status
			section = &s
			output.FormatSectionHeader(out, s)
		}
		output.FormatTask(out, i+1, rec)
		printed++
	}

	if printed == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

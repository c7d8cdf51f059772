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
	Register(&ActionCmd{Action: todo.ActionCreate, aliases: []string{"add"}, synopsis: "Record a new pending task"})
	Register(&ActionCmd{Action: todo.ActionGet, synopsis: "Print a task's status"})
	Register(&ActionCmd{Action: todo.ActionEdit, synopsis: "Toggle a task between pending and done"})
	Register(&ActionCmd{Action: todo.ActionDone, synopsis: "Mark a task done"})
	Register(&ActionCmd{Action: todo.ActionPending, synopsis: "Mark a task pending"})
	Register(&ActionCmd{Action: todo.ActionDelete, aliases: []string{"rm"}, synopsis: "Delete a done task"})
}

// ActionCmd runs one task lifecycle action against a title.
type ActionCmd struct {
	Action   todo.Action
	aliases  []string
	synopsis string
}

func (c *ActionCmd) Name() string      { return string(c.Action) }
func (c *ActionCmd) Aliases() []string { return c.aliases }
func (c *ActionCmd) Synopsis() string  { return c.synopsis }
func (c *ActionCmd) Usage() string     { return "todo " + string(c.Action) + " <title...|#n>" }
func (c *ActionCmd) NeedsStore() bool  { return true }

func (c *ActionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ActionCmd) Run(ctx context.Context, cfg *config.Config, st state.Store, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return report(errOut, err)
	}

	board, err := todo.Load(ctx, st, cfg.Logger())
	if err != nil {
		return report(errOut, err)
	}

	title, err := ResolveTaskRef(board, ref)
	if err != nil {
		return report(errOut, err)
	}

	res, err := todo.Process(ctx, board, c.Action, title)
	if err != nil {
		return report(errOut, err)
	}

	cfg.Logger().Info("task processed",
		"action", string(res.Action),
		"title", title,
		"before", res.Before.Status.String(),
		"after", res.After.Status.String(),
		"saved", res.Saved,
	)

	if c.Action == todo.ActionGet {
		output.FormatRecord(out, res.After)
		return exitcode.Success
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

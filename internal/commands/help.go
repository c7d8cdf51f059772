package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/state"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st state.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                   List all tasks
  todo list [common flags] [--status DONE|PENDING]
  todo create [common flags] <title...>  Record a new pending task (alias: add)
  todo get [common flags] <ref>          Print a task's status
  todo edit [common flags] <ref>         Toggle a task between pending and done
  todo done [common flags] <ref>
  todo pending [common flags] <ref>
  todo delete [common flags] <ref>       Delete a done task (alias: rm)
  todo init [common flags]               Create an empty task store
  todo help
  todo version

A <ref> is a task title, or #n for the n-th task shown by list.

Common flags:
  --config <dir>      Override config directory
  --state <file>      Override state file
  --backend <name>    Store backend: json (default) or sqlite
  --quiet             Suppress informational output
  --debug             Print debug logs to stderr
`

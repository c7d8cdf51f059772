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
	Register(&InitCmd{})
}

// InitCmd implements the init command.
type InitCmd struct{}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Create an empty task store" }
func (c *InitCmd) Usage() string     { return "todo init [common flags]" }
func (c *InitCmd) NeedsStore() bool  { return true }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, st state.Store, args []string, out, errOut io.Writer) int {
	initializer, ok := st.(state.Initializer)
	if !ok {
		fmt.Fprintln(errOut, "error: store cannot be initialized")
		return exitcode.UserError
	}

	if err := cfg.EnsureDir(); err != nil {
		return report(errOut, err)
	}

	created, err := initializer.Init(ctx)
	if err != nil {
		return report(errOut, err)
	}

	if cfg.Quiet {
		return exitcode.Success
	}
	if created {
		fmt.Fprintf(out, "initialized %s\n", cfg.StatePath())
	} else {
		fmt.Fprintln(out, "already initialized")
	}
	return exitcode.Success
}

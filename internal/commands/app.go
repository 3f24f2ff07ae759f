package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with every subcommand registered. The
// caller supplies lifecycle hooks; docgen uses the bare tree.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "todo",
		Usage:     "Keep a to-do list in the terminal",
		UsageText: "todo [global options] command [command options]",
		Description: `todo keeps a list of items driven by three actions: add an item, toggle an
item, and change the visibility filter. Every change goes through a single
store that renders the list from its current state.

Run 'todo' with no arguments to open the interactive list.
Run 'todo run' to replay action scripts and print the resulting state.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty writes to stderr)",
				Sources:     cli.EnvVars("TODO_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewRunCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewInitCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}

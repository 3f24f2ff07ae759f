package commands

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	initcmd "github.com/colonyops/todo/internal/commands/init"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a todo config file with an interactive wizard",
		UsageText: "todo init [options]",
		Description: `Asks for a theme, the filter the list opens with, the input placeholder,
and whether new items are trimmed, then writes the answers to the config
file (see --config). The result is checked the same way 'todo config
validate' checks it before anything is written.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing config. The old file is kept as .bak.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	if !cmd.yes && !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("init needs a terminal to prompt; pass --yes to accept defaults")
	}

	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Out:        c.Root().Writer,
	})
	return wizard.Run(ctx)
}

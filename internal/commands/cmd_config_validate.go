package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "todo config validate [options]",
				Description: "Loads the configuration file and reports every invalid field.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationOutput struct {
	Valid  bool              `json:"valid"`
	Errors []validationError `json:"errors,omitempty"`
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	out := validationOutput{Valid: true}
	for _, err := range cmd.validate() {
		out.Valid = false
		out.Errors = append(out.Errors, err)
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteIndented(w, out); err != nil {
			return err
		}
	} else {
		for _, e := range out.Errors {
			_, _ = fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message)
		}
		if out.Valid {
			_, _ = fmt.Fprintln(w, "config ok")
		}
	}

	if !out.Valid {
		return fmt.Errorf("%d error(s) found", len(out.Errors))
	}
	return nil
}

// validate loads the config file directly instead of using the cached
// config so errors are reported per field.
func (cmd *ConfigValidateCmd) validate() []validationError {
	if err := config.ValidateFile(cmd.flags.ConfigPath); err != nil {
		return flatten(err)
	}

	if _, err := config.Load(cmd.flags.ConfigPath); err != nil {
		return flatten(err)
	}
	return nil
}

func flatten(err error) []validationError {
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		out := make([]validationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, validationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return out
	}
	return []validationError{{Field: "config", Message: err.Error()}}
}

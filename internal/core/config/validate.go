package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// Validate checks that the configuration is valid. Errors are returned as
// criterio.FieldErrors keyed by the YAML path of the offending field.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("initial_filter", c.InitialFilter, filterIsValid),
		c.validateInput(),
	)
}

// ValidateFile checks the config file at configPath can be read. A missing
// file is not an error; defaults apply.
func ValidateFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateInput() error {
	var errs criterio.FieldErrorsBuilder
	if c.Input.CharLimit < 0 {
		errs = errs.Append("input.char_limit", fmt.Errorf("must be zero or greater, got %d", c.Input.CharLimit))
	}
	return errs.ToError()
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: must be one of %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func filterIsValid(value string) error {
	_, err := todo.ParseFilter(value)
	return err
}

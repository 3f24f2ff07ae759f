// Package initcmd implements the first-run wizard that writes a todo
// config file.
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

const configHeader = "# todo configuration. Check it with 'todo config validate'.\n"

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Out        io.Writer
}

// Answers holds the values collected by the form.
type Answers struct {
	Theme         string
	InitialFilter string
	Placeholder   string
	Trim          bool
}

// DefaultAnswers returns the answers matching config.DefaultConfig.
func DefaultAnswers() Answers {
	defaults := config.DefaultConfig()
	return Answers{
		Theme:         defaults.Theme,
		InitialFilter: defaults.InitialFilter,
		Placeholder:   defaults.Input.Placeholder,
		Trim:          defaults.Input.TrimEnabled(),
	}
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts    WizardOptions
	prompt  func(*Answers) error
	confirm func(path string) (bool, error)
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Wizard{
		opts:    opts,
		prompt:  promptForm,
		confirm: confirmOverwrite,
	}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	path := w.opts.ConfigPath
	if path == "" {
		return errors.New("no config path; pass --config")
	}

	exists := ConfigExists(path)
	if exists && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		overwrite, err := w.confirm(path)
		if err != nil {
			return err
		}
		if !overwrite {
			w.printf("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}

	cfg := GenerateConfig(answers)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	if exists {
		backupPath, err := BackupConfig(path)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			w.printf("Backed up config to: %s", backupPath)
		}
	}

	if err := WriteConfig(cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	log.Info().Ctx(ctx).
		Str("path", path).
		Str("theme", cfg.Theme).
		Msg("config written")

	w.printf("Created config: %s", path)
	w.printf("Run 'todo' to open your list")
	return nil
}

func (w *Wizard) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.opts.Out, format+"\n", args...)
}

// GenerateConfig builds a config from the wizard answers on top of the
// defaults.
func GenerateConfig(a Answers) config.Config {
	cfg := config.DefaultConfig()
	cfg.Theme = a.Theme
	cfg.InitialFilter = a.InitialFilter
	cfg.Input.Placeholder = a.Placeholder

	trim := a.Trim
	cfg.Input.Trim = &trim
	return cfg
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}

func promptForm(a *Answers) error {
	filters := make([]huh.Option[string], 0, len(todo.Filters))
	for _, f := range todo.Filters {
		filters = append(filters, huh.NewOption(f.Label(), string(f)))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&a.Theme),
		huh.NewSelect[string]().
			Title("Initial filter").
			Description("Which items the list shows on start").
			Options(filters...).
			Value(&a.InitialFilter),
		huh.NewInput().
			Title("Input placeholder").
			Value(&a.Placeholder),
		huh.NewConfirm().
			Title("Trim whitespace from new items?").
			Value(&a.Trim),
	))

	return form.Run()
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Config file already exists").
		Description(path + "\nOverwrite? (a backup will be created)").
		Value(&overwrite).
		Run()
	return overwrite, err
}

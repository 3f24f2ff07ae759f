package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/script"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/pkg/iojson"
)

// RunResult is the JSON line written for each replayed script.
type RunResult struct {
	Script           string                `json:"script"`
	VisibilityFilter todo.VisibilityFilter `json:"visibility_filter"`
	Dispatched       int                   `json:"dispatched"`
	Summary          todo.Summary          `json:"summary"`
	Items            todo.Collection       `json:"items"`
}

// RunCmd implements the todo run command.
type RunCmd struct {
	flags  *Flags
	reader iojson.FileReader[script.Script]
	filter string
}

// NewRunCmd creates a new run command.
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application.
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Replay action scripts without the interactive view",
		UsageText: "todo run [--filter <filter>] [--file <path>] [pattern ...]",
		Description: `Replays one or more action scripts through a fresh store and prints the
visible items of the final state as one JSON line per script.

Patterns support ** globbing. With no pattern the script is read from
--file or from stdin.

Script format (YAML or JSON):

  name: groceries
  steps:
    - type: ADD_TODO
      text: buy milk
    - type: TOGGLE_TODO
      id: 0
    - type: SET_VISIBILITY_FILTER
      filter: SHOW_COMPLETED

Examples:
  todo run scripts/groceries.yaml
  todo run --filter all 'scripts/**/*.yaml'
  cat script.json | todo run`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "override the final visibility filter (all, active, completed)",
				Destination: &cmd.filter,
			},
			cmd.reader.Flag(),
		},
		ShellComplete: FilterCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	var override todo.VisibilityFilter
	if cmd.filter != "" {
		f, err := todo.ParseFilter(cmd.filter)
		if err != nil {
			return err
		}
		override = f
	}

	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}

	scripts, err := cmd.load(c.Args().Slice())
	if err != nil {
		return err
	}

	for _, s := range scripts {
		result, err := cmd.replay(ctx, s, cfg.InitialState(), override)
		if err != nil {
			return err
		}
		if err := iojson.WriteLine(c.Root().Writer, result); err != nil {
			return err
		}
	}

	return nil
}

// load resolves patterns to scripts, or reads a single script from the
// file reader when no pattern is given.
func (cmd *RunCmd) load(patterns []string) ([]script.Script, error) {
	if len(patterns) == 0 {
		s, err := cmd.reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		if s.Name == "" {
			s.Name = "stdin"
			if src := cmd.reader.Source(); src != "-" {
				s.Name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			}
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid script %s: %w", cmd.reader.Source(), err)
		}
		return []script.Script{s}, nil
	}

	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no scripts match %q", pattern)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	scripts := make([]script.Script, 0, len(paths))
	for _, path := range paths {
		s, err := script.Load(path)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	return scripts, nil
}

func (cmd *RunCmd) replay(ctx context.Context, s script.Script, initial todo.AppState, override todo.VisibilityFilter) (RunResult, error) {
	ctx = logging.WithRunID(ctx, uuid.Must(uuid.NewV7()).String())
	ctx = logging.WithScript(ctx, s.Name)

	store := todo.NewStore(todo.ReduceApp, initial)
	unsubscribe := todo.RegisterDebugLogger(ctx, store, logging.Component("store"))
	defer unsubscribe()

	n, err := script.Replay(s, store, todo.NewIDAllocator())
	if err != nil {
		return RunResult{}, fmt.Errorf("replay %s: %w", s.Name, err)
	}

	state := store.State()
	filter := state.VisibilityFilter
	if override != "" {
		filter = override
	}

	log.Info().Ctx(ctx).
		Int("dispatched", n).
		Int("items", len(state.Items)).
		Msg("script replayed")

	return RunResult{
		Script:           s.Name,
		VisibilityFilter: filter,
		Dispatched:       n,
		Summary:          todo.Summarize(state.Items),
		Items:            todo.SelectVisible(state.Items, filter),
	}, nil
}

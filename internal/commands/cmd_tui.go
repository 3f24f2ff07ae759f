package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/tui"
	"github.com/colonyops/todo/pkg/logutils"
	"github.com/colonyops/todo/pkg/profiler"
)

type TuiCmd struct {
	flags        *Flags
	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TODO_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("todo needs an interactive terminal; use 'todo run' to replay scripts")
	}

	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}

	if palette, ok := styles.GetPalette(cfg.Theme); ok {
		styles.SetTheme(palette)
	}

	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	// Logging to stderr would draw over the TUI; hold it until exit.
	if cmd.flags.LogFile == "" {
		var held logutils.Deferred
		prev := log.Logger
		log.Logger = log.Logger.Output(&held)
		defer func() {
			log.Logger = prev
			_ = held.Flush(os.Stderr)
		}()
	}

	store := todo.NewStore(todo.ReduceApp, cfg.InitialState())
	unsubscribe := todo.RegisterDebugLogger(ctx, store, logging.Component("store"))
	defer unsubscribe()

	m := tui.New(tui.Options{Store: store, Input: cfg.Input})
	defer m.Close()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	summary := todo.Summarize(store.State().Items)
	log.Info().
		Uint64("dispatched", store.Dispatched()).
		Int("items", summary.Total).
		Int("completed", summary.Completed).
		Msg("tui exited")

	return nil
}

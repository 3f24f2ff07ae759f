package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies run_id and script from the event context into log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if runID := GetRunID(ctx); runID != "" {
		e.Str("run_id", runID)
	}

	if script := GetScript(ctx); script != "" {
		e.Str("script", script)
	}
}

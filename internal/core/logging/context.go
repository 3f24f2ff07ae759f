package logging

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	scriptKey contextKey = "script"
)

// WithRunID adds a replay run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithScript adds the name of the script being replayed to the context.
func WithScript(ctx context.Context, script string) context.Context {
	return context.WithValue(ctx, scriptKey, script)
}

// GetRunID retrieves the run ID from the context.
// Returns empty string if not present.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// GetScript retrieves the script name from the context.
// Returns empty string if not present.
func GetScript(ctx context.Context) string {
	if s, ok := ctx.Value(scriptKey).(string); ok {
		return s
	}
	return ""
}

package todo

import (
	"context"

	"github.com/rs/zerolog"
)

// RegisterDebugLogger subscribes a listener that logs every dispatched
// action at debug level. Events carry ctx so context hooks can add
// correlation fields. The returned function removes it.
func RegisterDebugLogger(ctx context.Context, store *Store, logger zerolog.Logger) (unsubscribe func()) {
	return store.Subscribe(func(state AppState, action Action) {
		ev := logger.Debug().Ctx(ctx).Str("action", string(action.Type()))

		switch a := action.(type) {
		case AddItem:
			ev = ev.Int("id", a.ID)
		case ToggleItem:
			ev = ev.Int("id", a.ID)
		case SetVisibilityFilter:
			ev = ev.Str("filter", string(a.Filter))
		}

		ev.Int("items", len(state.Items)).
			Str("visibility_filter", string(state.VisibilityFilter)).
			Msg("action dispatched")
	})
}

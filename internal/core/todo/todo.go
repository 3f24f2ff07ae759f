// Package todo defines the to-do list state, the actions that change it, and
// the pure reducers and selectors over that state.
package todo

import (
	"fmt"
	"strings"
)

// Item is a single entry in the to-do list.
type Item struct {
	ID        int    `json:"id"        yaml:"id"`
	Text      string `json:"text"      yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Collection is the ordered list of items, newest first.
type Collection []Item

// VisibilityFilter selects which items the view displays.
type VisibilityFilter string

const (
	ShowAll       VisibilityFilter = "SHOW_ALL"
	ShowActive    VisibilityFilter = "SHOW_ACTIVE"
	ShowCompleted VisibilityFilter = "SHOW_COMPLETED"
)

// DefaultFilter is the filter of a freshly created AppState.
const DefaultFilter = ShowAll

// Filters lists every known filter in display order.
var Filters = []VisibilityFilter{ShowAll, ShowActive, ShowCompleted}

// IsValid reports whether f is one of the known filters.
func (f VisibilityFilter) IsValid() bool {
	switch f {
	case ShowAll, ShowActive, ShowCompleted:
		return true
	default:
		return false
	}
}

// Label returns the short human name shown in the view footer.
func (f VisibilityFilter) Label() string {
	switch f {
	case ShowAll:
		return "All"
	case ShowActive:
		return "Active"
	case ShowCompleted:
		return "Completed"
	default:
		return string(f)
	}
}

// Next returns the filter following f in display order, wrapping around.
// Unknown filters advance to ShowAll.
func (f VisibilityFilter) Next() VisibilityFilter {
	for i, v := range Filters {
		if v == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return ShowAll
}

// ParseFilter accepts the wire names (SHOW_ACTIVE) and the short aliases
// (active), case-insensitively.
func ParseFilter(s string) (VisibilityFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "show_all", "all":
		return ShowAll, nil
	case "show_active", "active":
		return ShowActive, nil
	case "show_completed", "completed":
		return ShowCompleted, nil
	}
	return "", fmt.Errorf("invalid visibility filter %q: must be one of SHOW_ALL, SHOW_ACTIVE, SHOW_COMPLETED", s)
}

// AppState is the complete in-memory state of the application.
type AppState struct {
	Items            Collection       `json:"items"             yaml:"items"`
	VisibilityFilter VisibilityFilter `json:"visibility_filter" yaml:"visibility_filter"`
}

// InitialState returns the empty state every process starts from.
func InitialState() AppState {
	return AppState{
		Items:            Collection{},
		VisibilityFilter: DefaultFilter,
	}
}

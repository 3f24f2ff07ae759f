// Package script decodes and replays recorded sequences of to-do actions.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/todo/internal/core/todo"
)

// Script is a named, ordered list of steps.
type Script struct {
	Name  string `json:"name"  yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is the serialised form of a single action. AddItem steps carry only
// text; ids are assigned by the allocator during replay.
type Step struct {
	Type   todo.ActionType `json:"type"             yaml:"type"`
	Text   string          `json:"text,omitempty"   yaml:"text,omitempty"`
	ID     *int            `json:"id,omitempty"     yaml:"id,omitempty"`
	Filter string          `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Decode reads a script from r.
func Decode(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return s, fmt.Errorf("decode script: document is empty")
		}
		return s, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

// Load reads and validates the script at path. A script without a name is
// named after its file.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return Script{}, err
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := s.Validate(); err != nil {
		return Script{}, fmt.Errorf("invalid script %s: %w", path, err)
	}

	return s, nil
}

// Validate checks every step can be turned into an action.
func (s Script) Validate() error {
	var errs criterio.FieldErrorsBuilder

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		switch step.Type {
		case todo.ActionAddItem:
			if step.ID != nil {
				errs = errs.Append(field+".id", fmt.Errorf("ids are assigned during replay and cannot be set on %s", step.Type))
			}
		case todo.ActionToggleItem:
			if step.ID == nil {
				errs = errs.Append(field+".id", fmt.Errorf("required for %s", step.Type))
			}
		case todo.ActionSetVisibilityFilter:
			if _, err := todo.ParseFilter(step.Filter); err != nil {
				errs = errs.Append(field+".filter", err)
			}
		default:
			errs = errs.Append(field+".type", fmt.Errorf("unknown action type %q", step.Type))
		}
	}

	return errs.ToError()
}

// Action converts the step into an action, drawing ids from alloc.
func (st Step) Action(alloc *todo.IDAllocator) (todo.Action, error) {
	switch st.Type {
	case todo.ActionAddItem:
		return alloc.AddItem(st.Text), nil
	case todo.ActionToggleItem:
		if st.ID == nil {
			return nil, fmt.Errorf("%s requires an id", st.Type)
		}
		return todo.Toggle(*st.ID), nil
	case todo.ActionSetVisibilityFilter:
		f, err := todo.ParseFilter(st.Filter)
		if err != nil {
			return nil, err
		}
		return todo.SetFilter(f), nil
	default:
		return nil, fmt.Errorf("unknown action type %q", st.Type)
	}
}

// Replay dispatches every step of s to store in order and returns the
// number of actions dispatched. Replay stops at the first step that cannot
// be converted; steps before it stay applied.
func Replay(s Script, store *todo.Store, alloc *todo.IDAllocator) (int, error) {
	for i, step := range s.Steps {
		action, err := step.Action(alloc)
		if err != nil {
			return i, fmt.Errorf("step %d: %w", i, err)
		}
		store.Dispatch(action)
	}
	return len(s.Steps), nil
}

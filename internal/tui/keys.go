package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/todo/internal/core/todo"
)

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Submit      key.Binding
	LeaveInput  key.Binding
	SwitchFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ShowAll     key.Binding
	ShowActive  key.Binding
	ShowDone    key.Binding
	CycleFilter key.Binding
	Help        key.Binding
	Close       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		LeaveInput:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter", "space", " ", "x"), key.WithHelp("x", "toggle")),
		ShowAll:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowDone:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		CycleFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:       key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close")),
	}
}

// filterKey returns the key that selects f, or "" for unknown filters.
func (k keyMap) filterKey(f todo.VisibilityFilter) string {
	switch f {
	case todo.ShowAll:
		return k.ShowAll.Help().Key
	case todo.ShowActive:
		return k.ShowActive.Help().Key
	case todo.ShowCompleted:
		return k.ShowDone.Help().Key
	default:
		return ""
	}
}

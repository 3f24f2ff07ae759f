// Package tui implements the interactive view over a todo.Store.
//
// The model never changes items itself. Key presses become actions that
// are dispatched to the store, and every frame is rendered from
// store.State().
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options configures a new Model.
type Options struct {
	Store *todo.Store
	Input config.InputConfig
}

// statusLine is shared between the model copies Bubble Tea passes around
// and the store listener that writes to it.
type statusLine struct {
	text        string
	unsubscribe func()
}

// Model is the Bubble Tea model for the to-do list.
type Model struct {
	store    *todo.Store
	alloc    *todo.IDAllocator
	keys     keyMap
	input    textinput.Model
	inputCfg config.InputConfig
	status   *statusLine
	help     *helpOverlay

	focus    focusArea
	cursor   int
	width    int
	height   int
	quitting bool
}

// New creates a model bound to opts.Store and subscribes to it.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = opts.Input.Placeholder
	ti.Prompt = ""
	ti.CharLimit = opts.Input.CharLimit
	ti.SetWidth(defaultWidth - 6)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.Current().Primary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.Current().Muted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.Current().Muted)
	ti.SetStyles(inputStyles)
	ti.Focus()

	status := &statusLine{}
	status.unsubscribe = opts.Store.Subscribe(func(_ todo.AppState, action todo.Action) {
		status.text = describe(action)
	})

	return Model{
		store:    opts.Store,
		alloc:    todo.NewIDAllocator(),
		keys:     defaultKeyMap(),
		input:    ti,
		inputCfg: opts.Input,
		status:   status,
		focus:    focusInput,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// describe formats the status line for a dispatched action.
func describe(action todo.Action) string {
	switch a := action.(type) {
	case todo.AddItem:
		return fmt.Sprintf("added #%d %q", a.ID, a.Text)
	case todo.ToggleItem:
		return fmt.Sprintf("toggled #%d", a.ID)
	case todo.SetVisibilityFilter:
		return "showing " + strings.ToLower(a.Filter.Label())
	default:
		return string(action.Type())
	}
}

// Close removes the model's store subscription. Safe to call more than once.
func (m Model) Close() {
	m.status.unsubscribe()
}

// Quitting reports whether the model has requested exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-6, 10))
		if m.help != nil {
			m.help = newHelpOverlay(m.keys, m.width, m.height)
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.help != nil {
		return m.handleHelpKey(msg)
	}

	if key.Matches(msg, m.keys.SwitchFocus) {
		return m.switchFocus()
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.help = nil
	case key.Matches(msg, m.keys.Up):
		m.help.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.help.ScrollDown()
	}
	return m, nil
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.LeaveInput):
		return m.switchFocus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit turns the input value into an AddItem action.
func (m *Model) submit() {
	text := m.input.Value()
	if m.inputCfg.TrimEnabled() {
		text = strings.TrimSpace(text)
	}

	if text == "" && !m.inputCfg.AllowEmpty {
		m.status.text = "nothing to add"
		return
	}

	m.store.Dispatch(m.alloc.AddItem(text))
	m.input.SetValue("")
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()
	visible := todo.SelectVisible(state.Items, state.VisibilityFilter)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help = newHelpOverlay(m.keys, m.width, m.height)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(visible) {
			m.store.Dispatch(todo.Toggle(visible[m.cursor].ID))
		}
	case key.Matches(msg, m.keys.ShowAll):
		m.store.Dispatch(todo.SetFilter(todo.ShowAll))
	case key.Matches(msg, m.keys.ShowActive):
		m.store.Dispatch(todo.SetFilter(todo.ShowActive))
	case key.Matches(msg, m.keys.ShowDone):
		m.store.Dispatch(todo.SetFilter(todo.ShowCompleted))
	case key.Matches(msg, m.keys.CycleFilter):
		m.store.Dispatch(todo.SetFilter(state.VisibilityFilter.Next()))
	}

	m.clampCursor()
	return m, nil
}

// clampCursor keeps the cursor inside the visible list after the store
// changes underneath it.
func (m *Model) clampCursor() {
	state := m.store.State()
	n := len(todo.SelectVisible(state.Items, state.VisibilityFilter))
	m.cursor = max(min(m.cursor, n-1), 0)
}

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	content := m.render()
	if m.help != nil {
		content = m.help.Overlay(content, m.width, m.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

package script

import (
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/todo"
)

func intPtr(i int) *int { return &i }

func TestDecode_YAML(t *testing.T) {
	s, err := Decode(strings.NewReader(`
name: demo
steps:
  - type: ADD_TODO
    text: a
  - type: TOGGLE_TODO
    id: 0
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, todo.ActionAddItem, s.Steps[0].Type)
	require.NotNil(t, s.Steps[1].ID)
	assert.Equal(t, 0, *s.Steps[1].ID)
}

func TestDecode_JSON(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"name":"j","steps":[{"type":"SET_VISIBILITY_FILTER","filter":"active"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "active", s.Steps[0].Filter)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoad_NamesScriptAfterFile(t *testing.T) {
	s, err := Load("testdata/groceries.yaml")
	require.NoError(t, err)
	assert.Equal(t, "groceries", s.Name)
	assert.Len(t, s.Steps, 4)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)
	assert.Equal(t, "steps[0].type", fieldErrs[0].Field)
	assert.Equal(t, "steps[1].id", fieldErrs[1].Field)
	assert.Equal(t, "steps[2].filter", fieldErrs[2].Field)
}

func TestValidate_RejectsIDOnAdd(t *testing.T) {
	s := Script{Steps: []Step{{Type: todo.ActionAddItem, Text: "a", ID: intPtr(5)}}}

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, s.Validate(), &fieldErrs)
	assert.Equal(t, "steps[0].id", fieldErrs[0].Field)
}

func TestStep_Action(t *testing.T) {
	alloc := todo.NewIDAllocator()

	a, err := Step{Type: todo.ActionAddItem, Text: "x"}.Action(alloc)
	require.NoError(t, err)
	assert.Equal(t, todo.AddItem{ID: 0, Text: "x"}, a)

	a, err = Step{Type: todo.ActionToggleItem, ID: intPtr(0)}.Action(alloc)
	require.NoError(t, err)
	assert.Equal(t, todo.ToggleItem{ID: 0}, a)

	a, err = Step{Type: todo.ActionSetVisibilityFilter, Filter: "completed"}.Action(alloc)
	require.NoError(t, err)
	assert.Equal(t, todo.SetVisibilityFilter{Filter: todo.ShowCompleted}, a)

	_, err = Step{Type: "NOPE"}.Action(alloc)
	require.Error(t, err)

	assert.Equal(t, 1, alloc.Peek(), "only AddItem consumes ids")
}

func TestReplay(t *testing.T) {
	s, err := Load("testdata/groceries.yaml")
	require.NoError(t, err)

	store := todo.NewStore(todo.ReduceApp, todo.InitialState())
	n, err := Replay(s, store, todo.NewIDAllocator())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	state := store.State()
	assert.Equal(t, todo.ShowCompleted, state.VisibilityFilter)
	assert.Equal(t, todo.Collection{
		{ID: 1, Text: "walk dog"},
		{ID: 0, Text: "buy milk", Completed: true},
	}, state.Items)
}

func TestReplay_StopsAtBadStep(t *testing.T) {
	s := Script{Steps: []Step{
		{Type: todo.ActionAddItem, Text: "a"},
		{Type: todo.ActionToggleItem},
		{Type: todo.ActionAddItem, Text: "b"},
	}}

	store := todo.NewStore(todo.ReduceApp, todo.InitialState())
	n, err := Replay(s, store, todo.NewIDAllocator())

	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, store.State().Items, 1)
}

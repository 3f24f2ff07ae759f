package todo

// ActionType is the wire tag of an action.
type ActionType string

const (
	ActionAddItem             ActionType = "ADD_TODO"
	ActionToggleItem          ActionType = "TOGGLE_TODO"
	ActionSetVisibilityFilter ActionType = "SET_VISIBILITY_FILTER"
)

// IsValid reports whether t names a known action.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionAddItem, ActionToggleItem, ActionSetVisibilityFilter:
		return true
	default:
		return false
	}
}

// Action is a request for a single state change. The set of actions is
// closed; only the types in this package implement it.
type Action interface {
	Type() ActionType
	action()
}

// AddItem appends a new item to the front of the collection.
type AddItem struct {
	ID   int
	Text string
}

// ToggleItem flips the completed flag of the item with ID.
type ToggleItem struct {
	ID int
}

// SetVisibilityFilter replaces the active filter.
type SetVisibilityFilter struct {
	Filter VisibilityFilter
}

func (AddItem) Type() ActionType             { return ActionAddItem }
func (ToggleItem) Type() ActionType          { return ActionToggleItem }
func (SetVisibilityFilter) Type() ActionType { return ActionSetVisibilityFilter }

func (AddItem) action()             {}
func (ToggleItem) action()          {}
func (SetVisibilityFilter) action() {}

// IDAllocator hands out item ids for AddItem actions. It is owned by the
// component that constructs actions; ids start at 0 and advance once per
// constructed AddItem.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator whose first id is 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// AddItem builds an AddItem action carrying the next id.
func (a *IDAllocator) AddItem(text string) AddItem {
	id := a.next
	a.next++
	return AddItem{ID: id, Text: text}
}

// Peek returns the id the next AddItem will receive.
func (a *IDAllocator) Peek() int {
	return a.next
}

// Toggle builds a ToggleItem action.
func Toggle(id int) ToggleItem {
	return ToggleItem{ID: id}
}

// SetFilter builds a SetVisibilityFilter action.
func SetFilter(f VisibilityFilter) SetVisibilityFilter {
	return SetVisibilityFilter{Filter: f}
}

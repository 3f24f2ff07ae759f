package todo

// Reducer maps the current state and an action to the next state.
type Reducer func(AppState, Action) AppState

// ReduceItem computes the next value of a single item. For AddItem the
// current item is ignored; callers pass the zero Item.
func ReduceItem(current Item, action Action) Item {
	switch a := action.(type) {
	case AddItem:
		return Item{
			ID:        a.ID,
			Text:      a.Text,
			Completed: false,
		}
	case ToggleItem:
		if current.ID != a.ID {
			return current
		}
		next := current
		next.Completed = !current.Completed
		return next
	default:
		return current
	}
}

// ReduceCollection computes the next collection. Added items go to the
// front; toggles map over every element. Other actions return current
// as-is.
func ReduceCollection(current Collection, action Action) Collection {
	switch action.(type) {
	case AddItem:
		next := make(Collection, 0, len(current)+1)
		next = append(next, ReduceItem(Item{}, action))
		return append(next, current...)
	case ToggleItem:
		next := make(Collection, len(current))
		for i, item := range current {
			next[i] = ReduceItem(item, action)
		}
		return next
	default:
		return current
	}
}

// ReduceFilter computes the next visibility filter.
func ReduceFilter(current VisibilityFilter, action Action) VisibilityFilter {
	if a, ok := action.(SetVisibilityFilter); ok {
		return a.Filter
	}
	return current
}

// ReduceApp combines the slice reducers. Both run for every action so the
// two slices always advance together.
func ReduceApp(current AppState, action Action) AppState {
	return AppState{
		Items:            ReduceCollection(current.Items, action),
		VisibilityFilter: ReduceFilter(current.VisibilityFilter, action),
	}
}

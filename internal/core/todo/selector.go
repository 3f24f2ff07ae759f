package todo

// SelectVisible returns the items the view should display under filter.
// ShowAll and unrecognised filters return items unchanged. The result is
// recomputed on every call.
func SelectVisible(items Collection, filter VisibilityFilter) Collection {
	switch filter {
	case ShowActive:
		return selectWhere(items, false)
	case ShowCompleted:
		return selectWhere(items, true)
	default:
		return items
	}
}

func selectWhere(items Collection, completed bool) Collection {
	out := make(Collection, 0, len(items))
	for _, item := range items {
		if item.Completed == completed {
			out = append(out, item)
		}
	}
	return out
}

// Summary counts items by completion state.
type Summary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Summarize counts the active and completed items in a collection.
func Summarize(items Collection) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}

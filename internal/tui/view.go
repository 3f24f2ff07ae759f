package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// render draws the whole screen from the current store state.
func (m Model) render() string {
	state := m.store.State()
	visible := todo.SelectVisible(state.Items, state.VisibilityFilter)

	sections := []string{
		styles.TitleStyle.Render("todos"),
		m.renderInput(),
		"",
		m.renderList(visible),
		"",
		m.renderFooter(state),
	}

	if m.status.text != "" {
		sections = append(sections, styles.StatusStyle.Render(m.status.text))
	}

	sections = append(sections, styles.HelpHintStyle.Render(m.hint()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInput() string {
	if m.focus == focusInput {
		return styles.InputFocusedStyle.Render(m.input.View())
	}
	return styles.InputBlurredStyle.Render(m.input.View())
}

func (m Model) renderList(visible todo.Collection) string {
	if len(visible) == 0 {
		return styles.TextMutedStyle.Render("  nothing to show")
	}

	rows := make([]string, 0, len(visible))
	for i, item := range visible {
		rows = append(rows, m.renderItem(item, m.focus == focusList && i == m.cursor))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderItem(item todo.Item, selected bool) string {
	cursor := " "
	if selected {
		cursor = styles.ItemCursorStyle.Render(styles.IconCursor)
	}

	check := styles.CheckActiveStyle.Render(styles.IconCheckEmpty)
	text := styles.ItemStyle.Render(item.Text)
	if item.Completed {
		check = styles.CheckDoneStyle.Render(styles.IconCheckDone)
		text = styles.ItemCompletedStyle.Render(item.Text)
	}

	return cursor + " " + check + " " + text
}

// renderFooter draws the filter links and the remaining count. Inactive
// filters are prefixed with their key; the active one is plain text.
func (m Model) renderFooter(state todo.AppState) string {
	links := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		if f == state.VisibilityFilter {
			links = append(links, styles.FilterActiveStyle.Render(f.Label()))
			continue
		}
		link := styles.FilterLinkStyle.Render(f.Label())
		if k := m.keys.filterKey(f); k != "" {
			link = styles.FilterKeyStyle.Render(k) + " " + link
		}
		links = append(links, link)
	}

	summary := todo.Summarize(state.Items)
	noun := "items"
	if summary.Active == 1 {
		noun = "item"
	}

	return fmt.Sprintf("%s %s   %s",
		styles.FilterKeyStyle.Render("Show:"),
		strings.Join(links, " "),
		styles.TextMutedStyle.Render(fmt.Sprintf("%d %s left", summary.Active, noun)),
	)
}

func (m Model) hint() string {
	if m.focus == focusInput {
		return "enter add  tab list  ctrl+c quit"
	}
	return "x toggle  1/2/3 filter  f next  tab input  ? help  q quit"
}

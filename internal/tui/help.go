package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/todo/internal/core/styles"
)

const (
	helpMinWidth = 40
	helpMargin   = 4
	helpChrome   = 6 // border + padding + hint
)

// helpOverlay shows the key reference rendered from markdown.
type helpOverlay struct {
	viewport viewport.Model
}

func newHelpOverlay(keys keyMap, width, height int) *helpOverlay {
	modalWidth := max(min(width-helpMargin, 72), helpMinWidth)
	contentHeight := max(height-helpMargin-helpChrome, 3)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-4),
		viewport.WithHeight(contentHeight),
	)
	vp.SetContent(renderHelp(keys, modalWidth-4))

	return &helpOverlay{viewport: vp}
}

func helpMarkdown(keys keyMap) string {
	var b strings.Builder
	b.WriteString("# Help\n\n")

	writeSection := func(title string, rows [][2]string) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, row := range rows {
			fmt.Fprintf(&b, "- `%s` %s\n", row[0], row[1])
		}
		b.WriteString("\n")
	}

	writeSection("Input", [][2]string{
		{keys.Submit.Help().Key, keys.Submit.Help().Desc},
		{keys.SwitchFocus.Help().Key, keys.SwitchFocus.Help().Desc},
		{keys.LeaveInput.Help().Key, keys.LeaveInput.Help().Desc},
	})
	writeSection("List", [][2]string{
		{keys.Up.Help().Key, keys.Up.Help().Desc},
		{keys.Down.Help().Key, keys.Down.Help().Desc},
		{"enter/space/x", keys.Toggle.Help().Desc},
		{keys.Quit.Help().Key + "/esc", keys.Quit.Help().Desc},
	})
	writeSection("Filters", [][2]string{
		{keys.ShowAll.Help().Key, "show " + keys.ShowAll.Help().Desc},
		{keys.ShowActive.Help().Key, "show " + keys.ShowActive.Help().Desc},
		{keys.ShowDone.Help().Key, "show " + keys.ShowDone.Help().Desc},
		{keys.CycleFilter.Help().Key, keys.CycleFilter.Help().Desc},
	})

	return b.String()
}

// renderHelp renders the help markdown with the active theme. When glamour
// fails the raw markdown is shown.
func renderHelp(keys keyMap, width int) string {
	md := helpMarkdown(keys)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (h *helpOverlay) ScrollUp()   { h.viewport.ScrollUp(1) }
func (h *helpOverlay) ScrollDown() { h.viewport.ScrollDown(1) }

// Overlay renders the help modal centered over background.
func (h *helpOverlay) Overlay(background string, width, height int) string {
	hint := styles.HelpHintStyle.Render("↑/↓ scroll  esc close")
	modal := styles.HelpModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, h.viewport.View(), hint))

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

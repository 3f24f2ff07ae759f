package styles

// Row glyphs.
var (
	IconCheckEmpty = "[ ]"
	IconCheckDone  = "[x]"
	IconCursor     = "┃"
)

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// keyHint renders "[key] label" with the key highlighted.
func keyHint(key, label string) string {
	return styles.HelpKey.Render("["+key+"]") + " " + label
}

func joinHints(hints ...string) string {
	return strings.Join(hints, "  ")
}

// truncate cuts s to width terminal columns, ending in an ellipsis when
// anything was dropped. Styling escapes are kept intact. A width of zero
// or less leaves s unchanged.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

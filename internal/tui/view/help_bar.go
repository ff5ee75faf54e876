package view

import (
	"strings"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/keymap"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// RenderHelp renders the key hints for the current mode. The compact form
// is a single line cut to width; the expanded form lists every command
// grouped by category.
func RenderHelp(entries []keymap.HelpEntry, expanded bool, width int) string {
	if len(entries) == 0 {
		return ""
	}
	if expanded {
		return styles.HelpBar.Render(renderExpandedHelp(entries))
	}

	hints := make([]string, len(entries))
	for i, e := range entries {
		hints[i] = keyHint(strings.Join(e.Keys, "/"), e.Description)
	}
	line := joinHints(hints...)
	line = truncate(line, width)
	return styles.HelpBar.Render(line)
}

func renderExpandedHelp(entries []keymap.HelpEntry) string {
	var categories []string
	byCategory := make(map[string][]string)
	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		if _, ok := byCategory[cat]; !ok {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], keyHint(strings.Join(e.Keys, "/"), e.Description))
	}

	lines := make([]string, len(categories))
	for i, cat := range categories {
		lines[i] = styles.Secondary.Bold(true).Render(cat+":") + " " + joinHints(byCategory[cat]...)
	}
	return strings.Join(lines, "\n")
}

// RenderNotice renders a transient message under the page body.
func RenderNotice(text string, isError bool) string {
	if text == "" {
		return ""
	}
	if isError {
		return styles.WarningMsg.Render(text)
	}
	return styles.SuccessMsg.Render(text)
}

package view

import (
	"fmt"
	"strings"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// Overlay titles
const (
	SizeGuideTitle = "Skip Size Guide"
	FAQTitle       = "Frequently Asked Questions"
)

// RenderSizeGuide renders the size guide starting at entry offset. At most
// limit entries are shown; a limit of zero shows every remaining entry.
func RenderSizeGuide(entries []content.SizeGuideEntry, offset, limit int) string {
	offset = clamp(offset, 0, max(len(entries)-1, 0))
	end := len(entries)
	if limit > 0 {
		end = min(offset+limit, len(entries))
	}

	lines := []string{
		styles.OverlayTitle.Render(SizeGuideTitle),
		styles.Muted.Render(content.SizeGuideIntro),
	}
	for _, e := range entries[offset:end] {
		lines = append(lines,
			"",
			styles.CardTitle.Render(e.Title),
			"  Dimensions:       "+e.Dimensions,
			"  Volume:           "+e.Volume,
			"  Capacity:         "+e.Capacity,
			"  Suitable for:     "+e.SuitableFor,
			"  Not suitable for: "+styles.Muted.Render(e.NotSuitableFor),
		)
	}
	if offset > 0 || end < len(entries) {
		lines = append(lines, "", styles.Muted.Render(scrollPosition(offset, end, len(entries))))
	}
	lines = append(lines, "", styles.Muted.Render(content.SizeGuideHelp))
	return styles.Overlay.Render(strings.Join(lines, "\n"))
}

func scrollPosition(from, to, total int) string {
	pos := fmt.Sprintf("showing %d-%d of %d", from+1, to, total)
	if from > 0 {
		pos = "↑ " + pos
	}
	if to < total {
		pos += " ↓"
	}
	return pos
}

// RenderFAQ renders the questions with the cursor on one of them. The
// answer of the expanded item is shown beneath it; -1 expands nothing.
func RenderFAQ(items []content.FAQItem, cursor, expanded int) string {
	lines := []string{styles.OverlayTitle.Render(FAQTitle)}
	for i, item := range items {
		marker := "  "
		question := item.Question
		if i == cursor {
			marker = styles.Primary.Render("› ")
			question = styles.CardTitle.Render(question)
		}
		arrow := "▸ "
		if i == expanded {
			arrow = "▾ "
		}
		lines = append(lines, marker+arrow+question)
		if i == expanded {
			lines = append(lines, styles.Muted.Width(72).PaddingLeft(6).Render(item.Answer))
		}
	}
	return styles.Overlay.Render(strings.Join(lines, "\n"))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

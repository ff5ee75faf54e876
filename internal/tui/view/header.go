package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// Page text
const (
	PageTitle    = "Choose Your Skip Size"
	PageSubtitle = "Select the skip size that best suits your needs"
	SizeHelpHint = "Help me choose the right skip size"
)

// RenderHeader renders the page title and subtitle.
func RenderHeader() string {
	return styles.Title.Render(PageTitle) + "\n" + styles.Subtitle.Render(PageSubtitle)
}

// RenderProgress renders the hire flow steps with current highlighted.
// When the full indicator does not fit in width it collapses to a single
// "Step n of m" line. A width of zero means unlimited.
func RenderProgress(steps []content.Step, current, width int) string {
	if len(steps) == 0 {
		return ""
	}

	parts := make([]string, len(steps))
	for i, step := range steps {
		switch {
		case i < current:
			parts[i] = styles.StepDone.Render("✓ " + step.Label)
		case i == current:
			parts[i] = styles.StepCurrent.Render(step.Icon + " " + step.Label)
		default:
			parts[i] = styles.StepPending.Render(step.Icon + " " + step.Label)
		}
	}
	line := strings.Join(parts, styles.StepSeparator.Render(" ─ "))
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}

	if current < 0 || current >= len(steps) {
		current = 0
	}
	return styles.StepCurrent.Render(steps[current].Icon+" "+steps[current].Label) +
		styles.Muted.Render(fmt.Sprintf(" step %d of %d", current+1, len(steps)))
}

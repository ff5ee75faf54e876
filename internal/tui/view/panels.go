package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/filter"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// Empty and error state text
const (
	LoadingText    = "Loading available skips..."
	EmptyText      = "No skips match your current filters. Please adjust your criteria."
	ResetLabel     = "Reset Filters"
	RetryLabel     = "Try Again"
	HiddenWarning  = "Your selected skip is hidden by the current filters."
	SummaryHeading = "Your Selection"
)

// RenderFilterBar renders the filter toggles, the layout and the price
// summary of the visible offers.
func RenderFilterBar(f filter.State, layout Layout, summary pricing.PriceSummary) string {
	parts := make([]string, 0, len(filter.Categories)+2)
	for _, c := range filter.Categories {
		label := c.Label + " [" + c.Shortcut + "]"
		if f.Enabled(c.Key) {
			parts = append(parts, styles.ToggleOn.Render("✓ "+label))
		} else {
			parts = append(parts, styles.ToggleOff.Render("○ "+label))
		}
	}
	parts = append(parts,
		styles.Muted.Render("View: "+layout.Label()+" [v]"),
		styles.Muted.Render(summary.String()),
	)
	return strings.Join(parts, "  ")
}

// RenderLoading renders the loading screen around a spinner frame.
func RenderLoading(spinner string) string {
	return spinner + " " + styles.Muted.Render(LoadingText)
}

// RenderError renders the fetch failure with the retry affordance.
func RenderError(err error) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ErrorMsg.Render(errors.UserMessage(err)),
		"",
		keyHint("r", RetryLabel),
	)
}

// RenderEmpty renders the empty state shown when filters hide every offer.
func RenderEmpty() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Muted.Render(EmptyText),
		"",
		keyHint("x", ResetLabel),
	)
}

// SummaryState holds what the selection summary needs to render.
type SummaryState struct {
	Offer    skip.Offer
	Visible  bool
	Postcode string
	Area     string
}

// RenderSummary renders the price breakdown of the selected offer.
func RenderSummary(s SummaryState) string {
	o := s.Offer
	row := func(label, value string) string {
		return styles.SummaryLabel.Render(label) + value
	}

	lines := []string{
		styles.Title.Render(SummaryHeading),
		row("Skip", o.Label()),
		row("Hire period", fmt.Sprintf("%d days", o.HirePeriodDays)),
		row("Location", s.Postcode+", "+s.Area),
		row("Price before VAT", pricing.FormatCurrency(o.PriceBeforeVAT)),
		row(fmt.Sprintf("VAT (%g%%)", o.VAT), pricing.FormatCurrency(pricing.VATAmount(o))),
		row("Total", styles.Price.Render(pricing.FormatCurrency(pricing.TotalPrice(o)))+" "+styles.Muted.Render("Includes VAT")),
	}
	if !s.Visible {
		lines = append(lines, "", styles.WarningMsg.Render(HiddenWarning))
	}
	lines = append(lines, "", joinHints(keyHint("c", "Continue"), keyHint("b", "Back")))

	return styles.Summary.Render(strings.Join(lines, "\n"))
}

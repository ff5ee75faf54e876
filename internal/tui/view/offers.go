package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
)

// Layout selects how offers are laid out.
type Layout string

const (
	LayoutCards Layout = "card"
	LayoutList  Layout = "list"
)

// ParseLayout returns the layout named s, defaulting to cards.
func ParseLayout(s string) Layout {
	if Layout(s) == LayoutList {
		return LayoutList
	}
	return LayoutCards
}

// Toggle returns the other layout.
func (l Layout) Toggle() Layout {
	if l == LayoutList {
		return LayoutCards
	}
	return LayoutList
}

// Label returns the display name of the layout.
func (l Layout) Label() string {
	if l == LayoutList {
		return "List"
	}
	return "Cards"
}

// OffersState holds what the offer views need to render.
type OffersState struct {
	Offers       []skip.Offer
	Cursor       int
	SelectedID   int64
	HasSelection bool
	Width        int
}

func (s OffersState) selected(o skip.Offer) bool {
	return s.HasSelection && o.ID == s.SelectedID
}

// RenderOffers renders the offers in the given layout.
func RenderOffers(layout Layout, state OffersState) string {
	if layout == LayoutList {
		return RenderList(state)
	}
	return RenderCards(state)
}

// cardWidth is the inner width of a card, border excluded.
const cardWidth = 34

// defaultCardColumns is used when the terminal width is not known yet.
const defaultCardColumns = 3

// RenderCard renders a single offer card.
func RenderCard(o skip.Offer, focused, selected bool) string {
	style := styles.Card
	switch {
	case selected:
		style = styles.CardSelected
	case focused:
		style = styles.CardFocused
	}

	lines := []string{
		styles.CardTitle.Render(o.Label()) + " " + styles.Badge.Render(fmt.Sprintf("%d Yards", o.Size)),
		styles.Muted.Render(fmt.Sprintf("%d day hire period", o.HirePeriodDays)),
		"",
		content.Description(o.Size),
		"",
		permissionLine(o.AllowedOnRoad, "Road allowed", "Private only"),
		permissionLine(o.AllowsHeavyWaste, "Heavy waste", "No heavy waste"),
		styles.Muted.Render(fmt.Sprintf("Holds ~%d bin bags", content.EstimatedBinBags(o.Size))),
		"",
		styles.Price.Render(pricing.FormatCurrency(pricing.TotalPrice(o))) + " " + styles.Muted.Render("Inc. VAT"),
	}
	if o.Forbidden {
		lines = append(lines, styles.WarningMsg.Render("Not available at this location"))
	}

	action := styles.Muted.Render("  Select this skip")
	switch {
	case selected:
		action = styles.SuccessMsg.Render("● Selected")
	case focused:
		action = styles.Primary.Render("› Select this skip")
	}
	lines = append(lines, action)

	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func permissionLine(ok bool, yes, no string) string {
	if ok {
		return styles.Check(true) + " " + yes
	}
	return styles.Check(false) + " " + styles.Muted.Render(no)
}

// CardColumns returns how many cards fit side by side in width.
func CardColumns(width int) int {
	if width <= 0 {
		return defaultCardColumns
	}
	// border on both sides plus a one column gap
	cols := (width + 1) / (cardWidth + 3)
	if cols < 1 {
		return 1
	}
	return cols
}

// RenderCards lays the offers out as a grid of cards.
func RenderCards(state OffersState) string {
	if len(state.Offers) == 0 {
		return ""
	}

	cols := CardColumns(state.Width)
	var rows []string
	for start := 0; start < len(state.Offers); start += cols {
		end := min(start+cols, len(state.Offers))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, " ")
			}
			o := state.Offers[i]
			cards = append(cards, RenderCard(o, i == state.Cursor, state.selected(o)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderList renders one offer per line.
func RenderList(state OffersState) string {
	if len(state.Offers) == 0 {
		return ""
	}

	fit := func(row string) string {
		if state.Width > 0 {
			return truncate(row, max(state.Width-2, 1))
		}
		return row
	}

	header := fmt.Sprintf("  %-14s %-9s %-6s %-6s %8s", "Skip", "Hire", "Road", "Heavy", "Price")
	lines := []string{styles.ListRow.Foreground(styles.MutedColor).Render(fit(header))}
	for i, o := range state.Offers {
		marker := " "
		style := styles.ListRow
		switch {
		case state.selected(o):
			marker = "●"
			style = styles.ListRowSelected
		case i == state.Cursor:
			marker = "›"
			style = styles.ListRowFocused
		}

		row := fmt.Sprintf("%s %-14s %-9s %-6s %-6s %8s  %s",
			marker,
			o.Label(),
			fmt.Sprintf("%d days", o.HirePeriodDays),
			yesNo(o.AllowedOnRoad),
			yesNo(o.AllowsHeavyWaste),
			pricing.FormatCurrency(pricing.TotalPrice(o)),
			content.Description(o.Size),
		)
		lines = append(lines, style.Render(fit(row)))
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

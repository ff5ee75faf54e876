package tui

import (
	"strings"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/view"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		view.RenderProgress(content.Steps(), content.SelectSkipStep, m.width),
		"",
		view.RenderHeader(),
		m.renderBody(),
	}
	if m.notice != "" {
		sections = append(sections, view.RenderNotice(m.notice, m.noticeError))
	}
	sections = append(sections, view.RenderHelp(m.keymap.Help(m.mode()), m.showHelp, m.width))

	return strings.Join(sections, "\n")
}

func (m Model) renderBody() string {
	switch m.state.Status() {
	case selection.Loading:
		return view.RenderLoading(m.spinner.View())
	case selection.Errored:
		return view.RenderError(m.state.Err())
	}

	switch m.overlay {
	case overlaySizeGuide:
		return view.RenderSizeGuide(content.SizeGuide(), m.guideOffset, m.guidePageSize())
	case overlayFAQ:
		return view.RenderFAQ(content.FAQ(), m.faqCursor, m.faqExpanded)
	}

	return m.renderBrowser()
}

func (m Model) renderBrowser() string {
	visible := m.state.Visible()
	selected, hasSelection := m.state.Selected()

	parts := []string{
		view.RenderFilterBar(m.state.Filters(), m.layout, pricing.Summarize(visible)),
		styles.Muted.Render(view.SizeHelpHint + " [g]"),
		"",
	}

	if len(visible) == 0 {
		parts = append(parts, view.RenderEmpty())
	} else {
		parts = append(parts, view.RenderOffers(m.layout, view.OffersState{
			Offers:       visible,
			Cursor:       m.cursor,
			SelectedID:   selected.ID,
			HasSelection: hasSelection,
			Width:        m.width,
		}))
	}

	if hasSelection {
		parts = append(parts, view.RenderSummary(view.SummaryState{
			Offer:    selected,
			Visible:  m.state.SelectedVisible(),
			Postcode: m.postcode,
			Area:     m.area,
		}))
	}

	return strings.Join(parts, "\n")
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/filter"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/keymap"
)

// handleKeypress looks the key up in the current mode and runs the bound
// command. Unbound keys are ignored.
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	cmd, ok := m.keymap.GetBinding(key, m.mode())
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.shutdown()
		return m, tea.Quit

	case keymap.CmdRetry:
		return m.retry()

	case keymap.CmdNextOffer:
		m.moveCursor(1)
	case keymap.CmdPrevOffer:
		m.moveCursor(-1)
	case keymap.CmdFirstOffer:
		m.cursor = 0
	case keymap.CmdLastOffer:
		m.cursor = len(m.state.Visible()) - 1
		m.clampCursor()

	case keymap.CmdSelectOffer:
		return m.selectFocused()
	case keymap.CmdContinue:
		return m.continueWithSelection()
	case keymap.CmdBack:
		return m.back()

	case keymap.CmdToggleRoad:
		return m.toggleFilter(filter.AllowedOnRoad)
	case keymap.CmdToggleHeavy:
		return m.toggleFilter(filter.AllowsHeavyWaste)
	case keymap.CmdResetFilters:
		if err := m.state.ResetFilters(); err != nil {
			return m, m.setNotice(err.Error(), true)
		}
		m.clampCursor()

	case keymap.CmdToggleView:
		m.layout = m.layout.Toggle()
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdOpenSizeGuide:
		m.overlay = overlaySizeGuide
		m.guideOffset = 0
	case keymap.CmdOpenFAQ:
		m.overlay = overlayFAQ
	case keymap.CmdCloseOverlay:
		m.overlay = overlayNone
	case keymap.CmdScrollDown:
		m.scrollOverlay(1)
	case keymap.CmdScrollUp:
		m.scrollOverlay(-1)
	case keymap.CmdExpandItem:
		if m.faqExpanded == m.faqCursor {
			m.faqExpanded = -1
		} else {
			m.faqExpanded = m.faqCursor
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	n := len(m.state.Visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) scrollOverlay(delta int) {
	switch m.overlay {
	case overlaySizeGuide:
		last := max(len(content.SizeGuide())-m.guidePageSize(), 0)
		m.guideOffset = max(0, min(m.guideOffset+delta, last))
	case overlayFAQ:
		n := len(content.FAQ())
		m.faqCursor = max(0, min(m.faqCursor+delta, n-1))
	}
}

func (m Model) retry() (tea.Model, tea.Cmd) {
	if err := m.state.Retry(); err != nil {
		// Retry is only bound while Errored, so this is a stale key.
		m.logger.Debug("retry rejected", "reason", err.Error())
		return m, nil
	}
	m.notice = ""
	m.logger.Info("retrying fetch", "generation", m.state.Generation())
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) selectFocused() (tea.Model, tea.Cmd) {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return m, nil
	}
	m.clampCursor()
	o := visible[m.cursor]
	if err := m.state.Select(o.ID); err != nil {
		return m, m.setNotice(err.Error(), true)
	}
	m.logger.Debug("offer selected", "offer_id", o.ID, "size", o.Size)
	return m, nil
}

func (m Model) continueWithSelection() (tea.Model, tea.Cmd) {
	req, err := m.state.Continue()
	if err != nil {
		if errors.Is(err, errors.ErrNoSelection) {
			return m, m.setNotice("Select a skip to continue", true)
		}
		return m, m.setNotice(err.Error(), true)
	}

	m.continued = &req
	m.logger.Info("continue requested",
		"offer_id", req.Offer.ID,
		"size", req.Offer.Size,
		"total", req.Total)
	notice := m.setNotice(fmt.Sprintf("Continuing with the %s at %s", req.Offer.Label(), pricing.FormatCurrency(req.Total)), false)
	return m, tea.Batch(notice, m.navigator.Continue(req))
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if _, ok := m.state.Selected(); !ok {
		// Nothing selected: stay on the page rather than leave the step.
		return m, nil
	}
	m.state.ClearSelection()
	m.continued = nil
	return m, m.navigator.Back()
}

func (m Model) toggleFilter(name string) (tea.Model, tea.Cmd) {
	if err := m.state.ToggleFilter(name); err != nil {
		return m, m.setNotice(err.Error(), true)
	}
	m.clampCursor()
	m.logger.Debug("filter toggled", "filter", name, "enabled", m.state.Filters().Enabled(name))
	return m, nil
}

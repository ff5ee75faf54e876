package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/msg"
)

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case spinner.TickMsg:
		if m.state.Status() != selection.Loading || m.quitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case msg.OffersLoadedMsg:
		m.handleOffersLoaded(message)
		return m, nil

	case msg.NoticeExpiredMsg:
		if message.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleOffersLoaded applies a fetch result. Results for an older
// generation or arriving after shutdown are dropped.
func (m *Model) handleOffersLoaded(result msg.OffersLoadedMsg) {
	var err error
	if result.Err != nil {
		err = m.state.Failed(result.Generation, result.Err)
	} else {
		err = m.state.Loaded(result.Generation, result.Offers)
	}

	switch {
	case err != nil:
		m.logger.Debug("discarded fetch result",
			"generation", result.Generation,
			"current_generation", m.state.Generation(),
			"reason", err.Error())
	case result.Err != nil:
		logBySeverity(m.logger, result.Err, "fetch failed",
			"generation", result.Generation,
			"error", result.Err.Error(),
			"severity", errors.GetSeverity(result.Err).String(),
			"retryable", errors.IsRetryable(result.Err))
	default:
		m.cursor = 0
		m.logger.Info("offers loaded",
			"generation", result.Generation,
			"count", len(result.Offers))
	}
}

// logBySeverity logs msg at the level matching the severity of err.
func logBySeverity(l *logging.Logger, err error, msg string, args ...any) {
	switch errors.GetSeverity(err) {
	case errors.SeverityDebug:
		l.Debug(msg, args...)
	case errors.SeverityInfo:
		l.Info(msg, args...)
	case errors.SeverityWarning:
		l.Warn(msg, args...)
	default:
		l.Error(msg, args...)
	}
}

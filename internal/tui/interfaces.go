package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
)

// Navigator moves the user between steps of the hire flow. The selector
// page only signals Continue and Back; the flow around it decides what
// they mean.
type Navigator interface {
	// Continue is called with the selected offer and its VAT-inclusive total.
	Continue(req selection.ContinueRequest) tea.Cmd

	// Back is called after the selection has been cleared.
	Back() tea.Cmd
}

// QuitNavigator ends the program on Continue so the caller can pick up the
// request from the final model with Model.Continued. Back stays on the page.
type QuitNavigator struct{}

// Continue quits the program.
func (QuitNavigator) Continue(selection.ContinueRequest) tea.Cmd {
	return tea.Quit
}

// Back does nothing.
func (QuitNavigator) Back() tea.Cmd { return nil }

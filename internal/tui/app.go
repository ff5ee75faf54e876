package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	altScreen bool
}

// New creates a new TUI application
func New(ctx context.Context, cfg Config, altScreen bool) *App {
	return &App{
		model:     NewModel(ctx, cfg),
		altScreen: altScreen,
	}
}

// Run starts the TUI application and blocks until it exits. It returns the
// request the user continued with, if they did.
func (a *App) Run() (selection.ContinueRequest, bool, error) {
	var opts []tea.ProgramOption
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Quit cleanly on termination signals so the pending fetch is cancelled
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigChan:
			a.program.Quit()
		case <-done:
		}
	}()

	final, err := a.program.Run()
	signal.Stop(sigChan)

	if m, ok := final.(Model); ok {
		a.model = m
	}
	a.model.shutdown()
	if err != nil {
		return selection.ContinueRequest{}, false, fmt.Errorf("TUI error: %w", err)
	}

	req, ok := a.model.Continued()
	return req, ok, nil
}

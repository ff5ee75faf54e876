package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/catalog"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/content"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/keymap"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/msg"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/view"
)

// noticeDuration is how long transient notices stay on screen.
const noticeDuration = 3 * time.Second

// overlay is a full-screen panel shown over the offer browser.
type overlay int

const (
	overlayNone overlay = iota
	overlaySizeGuide
	overlayFAQ
)

// Config holds the dependencies and settings of the selector page.
type Config struct {
	Fetcher   catalog.Fetcher
	Postcode  string
	Area      string
	Layout    view.Layout
	Navigator Navigator
	Logger    *logging.Logger

	// Initial terminal size, if known before the first WindowSizeMsg
	Width  int
	Height int
}

// Model holds the TUI application state
type Model struct {
	// Core components
	ctx       context.Context
	cancel    context.CancelFunc
	fetcher   catalog.Fetcher
	navigator Navigator
	logger    *logging.Logger
	keymap    *keymap.Keymap
	state     *selection.State

	postcode string
	area     string

	// UI state
	spinner  spinner.Model
	layout   view.Layout
	overlay  overlay
	cursor   int // index into the visible offers
	width    int
	height   int
	showHelp bool
	quitting bool

	// Overlay state
	guideOffset int
	faqCursor   int
	faqExpanded int

	// Transient notice under the page body
	notice      string
	noticeError bool
	noticeID    int

	// continued is set once the user continues with a selection
	continued *selection.ContinueRequest
}

// NewModel creates the selector page model. The fetch for generation 1 is
// issued by Init; cancelling ctx aborts it.
func NewModel(ctx context.Context, cfg Config) Model {
	ctx, cancel := context.WithCancel(ctx)

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	nav := cfg.Navigator
	if nav == nil {
		nav = QuitNavigator{}
	}
	layout := cfg.Layout
	if layout == "" {
		layout = view.LayoutCards
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	return Model{
		ctx:         ctx,
		cancel:      cancel,
		fetcher:     cfg.Fetcher,
		navigator:   nav,
		logger:      logger.WithComponent("tui").WithLocation(cfg.Postcode, cfg.Area),
		keymap:      keymap.DefaultKeymap(),
		state:       selection.New(),
		postcode:    cfg.Postcode,
		area:        cfg.Area,
		spinner:     sp,
		layout:      layout,
		width:       cfg.Width,
		height:      cfg.Height,
		faqExpanded: -1,
	}
}

// Init starts the spinner and the first catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	gen := m.state.Generation()
	m.logger.Info("fetching offers", "generation", gen)
	return msg.FetchOffers(m.ctx, m.fetcher, gen, m.postcode, m.area)
}

// Continued returns the request the user continued with, if any.
func (m Model) Continued() (selection.ContinueRequest, bool) {
	if m.continued == nil {
		return selection.ContinueRequest{}, false
	}
	return *m.continued, true
}

// State exposes the selection state for inspection.
func (m Model) State() *selection.State {
	return m.state
}

// mode returns the key binding mode for the current screen.
func (m Model) mode() keymap.Mode {
	switch m.state.Status() {
	case selection.Loading:
		return keymap.ModeLoading
	case selection.Errored:
		return keymap.ModeErrored
	}
	switch m.overlay {
	case overlaySizeGuide:
		return keymap.ModeSizeGuide
	case overlayFAQ:
		return keymap.ModeFAQ
	}
	return keymap.ModeBrowse
}

// shutdown cancels any pending fetch and closes the state so that late
// results are discarded.
func (m *Model) shutdown() {
	m.quitting = true
	m.cancel()
	m.state.Close()
}

// setNotice shows text under the page body until it expires.
func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.noticeID++
	m.notice = text
	m.noticeError = isError
	return msg.ExpireNotice(m.noticeID, noticeDuration)
}

// clampCursor keeps the cursor inside the visible offers.
func (m *Model) clampCursor() {
	n := len(m.state.Visible())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// guidePageSize returns how many size guide entries fit on screen.
func (m Model) guidePageSize() int {
	const linesPerEntry = 7
	const chrome = 14
	if m.height <= 0 {
		return len(content.SizeGuide())
	}
	return max(1, (m.height-chrome)/linesPerEntry)
}

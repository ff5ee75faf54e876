package tui

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/selection"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/testutil"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/msg"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/view"
)

type stubFetcher struct {
	offers []skip.Offer
	err    error
	calls  atomic.Int32
}

func (f *stubFetcher) FetchOffers(ctx context.Context, postcode, area string) ([]skip.Offer, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, errors.NewNetworkError(err)
	}
	return f.offers, f.err
}

type recordingNavigator struct {
	continued []selection.ContinueRequest
	backs     int
}

func (n *recordingNavigator) Continue(req selection.ContinueRequest) tea.Cmd {
	n.continued = append(n.continued, req)
	return nil
}

func (n *recordingNavigator) Back() tea.Cmd {
	n.backs++
	return nil
}

func newTestModel(t *testing.T, f *stubFetcher, nav Navigator) Model {
	t.Helper()
	m := NewModel(context.Background(), Config{
		Fetcher:   f,
		Postcode:  testutil.ExamplePostcode,
		Area:      testutil.ExampleArea,
		Navigator: nav,
	})
	t.Cleanup(m.shutdown)
	return m
}

func update(t *testing.T, m Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(message)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// runCmd executes cmd and any batched commands, returning the messages
// they produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	out := cmd()
	if batch, ok := out.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{out}
}

func loadedMsg(msgs []tea.Msg) (msg.OffersLoadedMsg, bool) {
	for _, m := range msgs {
		if loaded, ok := m.(msg.OffersLoadedMsg); ok {
			return loaded, true
		}
	}
	return msg.OffersLoadedMsg{}, false
}

// readyModel runs Init and applies its fetch result.
func readyModel(t *testing.T, f *stubFetcher, nav Navigator) Model {
	t.Helper()
	m := newTestModel(t, f, nav)
	loaded, ok := loadedMsg(runCmd(m.Init()))
	if !ok {
		t.Fatal("Init() did not fetch offers")
	}
	m, _ = update(t, m, loaded)
	return m
}

func visibleSizes(m Model) []int {
	return testutil.Sizes(m.State().Visible())
}

func TestModel_InitFetchesFirstGeneration(t *testing.T) {
	f := &stubFetcher{offers: testutil.ExampleOffers(t)}
	m := newTestModel(t, f, nil)

	if m.State().Status() != selection.Loading {
		t.Fatalf("Status() = %v, want loading", m.State().Status())
	}
	if !strings.Contains(m.View(), view.LoadingText) {
		t.Errorf("View() should show the loading text, got:\n%s", m.View())
	}

	loaded, ok := loadedMsg(runCmd(m.Init()))
	if !ok {
		t.Fatal("Init() did not produce an OffersLoadedMsg")
	}
	if loaded.Generation != 1 {
		t.Errorf("Generation = %d, want 1", loaded.Generation)
	}
	if f.calls.Load() != 1 {
		t.Errorf("fetch calls = %d, want 1", f.calls.Load())
	}

	m, _ = update(t, m, loaded)
	if m.State().Status() != selection.Ready {
		t.Fatalf("Status() = %v, want ready", m.State().Status())
	}
	if got := visibleSizes(m); !slices.Equal(got, []int{4, 5, 6, 8, 10}) {
		t.Errorf("visible sizes = %v, want [4 5 6 8 10]", got)
	}
	if !strings.Contains(m.View(), "10 Yard Skip") {
		t.Error("View() should list the offers")
	}
}

func TestModel_FilterSelectContinue(t *testing.T) {
	nav := &recordingNavigator{}
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nav)

	m = press(t, m, runeKey('o'))
	if got := visibleSizes(m); !slices.Equal(got, []int{4, 6}) {
		t.Fatalf("visible sizes after road filter = %v, want [4 6]", got)
	}

	m = press(t, m, runeKey('j'), enterKey)
	selected, ok := m.State().Selected()
	if !ok || selected.ID != 17938 {
		t.Fatalf("Selected() = %d, %v; want 17938", selected.ID, ok)
	}
	if out := m.View(); !strings.Contains(out, view.SummaryHeading) || !strings.Contains(out, "£317") {
		t.Errorf("View() should show the summary with £317, got:\n%s", out)
	}

	m, cmd := update(t, m, runeKey('c'))
	if cmd == nil {
		t.Error("continue should return a command")
	}
	if len(nav.continued) != 1 {
		t.Fatalf("navigator continued %d times, want 1", len(nav.continued))
	}
	req := nav.continued[0]
	if req.Offer.ID != 17938 || math.Abs(req.Total-316.8) > 1e-9 {
		t.Errorf("request = %d / %v, want 17938 / 316.8", req.Offer.ID, req.Total)
	}
	if got, ok := m.Continued(); !ok || got.Offer.ID != 17938 {
		t.Errorf("Continued() = %+v, %v", got, ok)
	}
	if !strings.Contains(m.View(), "Continuing with the 6 Yard Skip at £317") {
		t.Errorf("View() should confirm the continue, got:\n%s", m.View())
	}
}

func TestModel_ContinueWithoutSelection(t *testing.T) {
	nav := &recordingNavigator{}
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nav)

	m, cmd := update(t, m, runeKey('c'))
	if cmd == nil {
		t.Error("notice should schedule its expiry")
	}
	if len(nav.continued) != 0 {
		t.Error("navigator should not be called without a selection")
	}
	if !strings.Contains(m.View(), "Select a skip to continue") {
		t.Errorf("View() should show a notice, got:\n%s", m.View())
	}

	m, _ = update(t, m, msg.NoticeExpiredMsg{ID: m.noticeID})
	if strings.Contains(m.View(), "Select a skip to continue") {
		t.Error("notice should be cleared once expired")
	}
}

func TestModel_StaleNoticeExpiryIsIgnored(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, &recordingNavigator{})

	m = press(t, m, runeKey('c')) // notice 1
	m = press(t, m, runeKey('c')) // notice 2
	m, _ = update(t, m, msg.NoticeExpiredMsg{ID: 1})
	if m.notice == "" {
		t.Error("expiry of an older notice should not clear the current one")
	}
}

func TestModel_SelectionRetainedWhenFilteredOut(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	// Select the 5 yard skip, which is not allowed on the road
	m = press(t, m, runeKey('j'), enterKey, runeKey('o'))

	selected, ok := m.State().Selected()
	if !ok || selected.ID != 17937 {
		t.Fatalf("Selected() = %d, %v; want 17937", selected.ID, ok)
	}
	if !strings.Contains(m.View(), view.HiddenWarning) {
		t.Errorf("View() should warn that the selection is hidden, got:\n%s", m.View())
	}
}

func TestModel_SelectReplacesPrevious(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	m = press(t, m, enterKey, runeKey('j'), runeKey('j'), enterKey)
	selected, _ := m.State().Selected()
	if selected.ID != 17938 {
		t.Errorf("Selected().ID = %d, want 17938", selected.ID)
	}
}

func TestModel_BackClearsSelection(t *testing.T) {
	nav := &recordingNavigator{}
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nav)

	m = press(t, m, runeKey('b'))
	if nav.backs != 0 {
		t.Error("back without a selection should do nothing")
	}

	m = press(t, m, enterKey, escKey)
	if _, ok := m.State().Selected(); ok {
		t.Error("back should clear the selection")
	}
	if nav.backs != 1 {
		t.Errorf("navigator backs = %d, want 1", nav.backs)
	}
}

func TestModel_CursorWrapsAndClamps(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	m = press(t, m, runeKey('k'))
	if m.cursor != 4 {
		t.Errorf("cursor after moving back from the first offer = %d, want 4", m.cursor)
	}

	// Only two offers remain visible; the cursor moves onto the last one
	m = press(t, m, runeKey('o'))
	if m.cursor != 1 {
		t.Errorf("cursor after filtering = %d, want 1", m.cursor)
	}
}

func TestModel_EmptyStateAndReset(t *testing.T) {
	offers := testutil.ExampleOffers(t)
	for i := range offers {
		offers[i].AllowedOnRoad = false
	}
	m := readyModel(t, &stubFetcher{offers: offers}, nil)

	m = press(t, m, runeKey('o'))
	if len(m.State().Visible()) != 0 {
		t.Fatalf("visible = %d, want 0", len(m.State().Visible()))
	}
	if !strings.Contains(m.View(), view.EmptyText) {
		t.Errorf("View() should show the empty state, got:\n%s", m.View())
	}

	// Selecting with nothing visible is a no-op
	m = press(t, m, enterKey)
	if _, ok := m.State().Selected(); ok {
		t.Error("nothing should be selected")
	}

	m = press(t, m, runeKey('x'))
	if len(m.State().Visible()) != 5 {
		t.Errorf("visible after reset = %d, want 5", len(m.State().Visible()))
	}
}

func TestModel_FetchFailureAndRetry(t *testing.T) {
	f := &stubFetcher{err: errors.NewRemoteFetchError(500)}
	m := readyModel(t, f, nil)

	if m.State().Status() != selection.Errored {
		t.Fatalf("Status() = %v, want errored", m.State().Status())
	}
	out := m.View()
	if !strings.Contains(out, "Failed to load available skips") || !strings.Contains(out, view.RetryLabel) {
		t.Errorf("View() should show the error with retry, got:\n%s", out)
	}

	// Browsing keys do nothing while errored
	m = press(t, m, runeKey('o'))
	if m.State().Filters().AllowedOnRoad {
		t.Error("filters should not toggle while errored")
	}

	f.err = nil
	f.offers = testutil.ExampleOffers(t)
	m, cmd := update(t, m, runeKey('r'))
	if m.State().Status() != selection.Loading || m.State().Generation() != 2 {
		t.Fatalf("after retry: %v generation %d, want loading generation 2", m.State().Status(), m.State().Generation())
	}

	loaded, ok := loadedMsg(runCmd(cmd))
	if !ok {
		t.Fatal("retry did not re-issue the fetch")
	}
	if loaded.Generation != 2 {
		t.Errorf("re-issued fetch generation = %d, want 2", loaded.Generation)
	}
	if f.calls.Load() != 2 {
		t.Errorf("fetch calls = %d, want 2", f.calls.Load())
	}

	m, _ = update(t, m, loaded)
	if m.State().Status() != selection.Ready {
		t.Errorf("Status() = %v, want ready", m.State().Status())
	}
}

func TestModel_RetryIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)

	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("retry while loading should not start another fetch")
	}
	if m.State().Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", m.State().Generation())
	}
}

func TestModel_StaleResultDiscarded(t *testing.T) {
	m := readyModel(t, &stubFetcher{err: errors.NewNetworkError(nil)}, nil)
	m = press(t, m, runeKey('r'))

	// A late result from the first fetch arrives after the retry started
	m, _ = update(t, m, msg.OffersLoadedMsg{Generation: 1, Offers: testutil.ExampleOffers(t)})
	if m.State().Status() != selection.Loading {
		t.Errorf("Status() = %v, want loading", m.State().Status())
	}
}

func TestModel_QuitDiscardsPendingResult(t *testing.T) {
	m := newTestModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if msgs := runCmd(cmd); len(msgs) != 1 {
		t.Fatalf("quit produced %d messages, want 1", len(msgs))
	} else if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("quit produced %T, want tea.QuitMsg", msgs[0])
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the fetch context")
	}

	m, _ = update(t, m, msg.OffersLoadedMsg{Generation: 1, Offers: testutil.ExampleOffers(t)})
	if !m.State().Closed() || m.State().Status() != selection.Loading {
		t.Errorf("state = %v closed=%v, want loading and closed", m.State().Status(), m.State().Closed())
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModel_Overlays(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	m = press(t, m, runeKey('g'))
	if !strings.Contains(m.View(), view.SizeGuideTitle) {
		t.Errorf("View() should show the size guide, got:\n%s", m.View())
	}
	// Browsing keys are not active under the overlay
	m = press(t, m, runeKey('o'))
	if m.State().Filters().AllowedOnRoad {
		t.Error("filter toggled under the size guide")
	}
	m = press(t, m, escKey)
	if m.overlay != overlayNone {
		t.Fatal("esc should close the size guide")
	}

	m = press(t, m, runeKey('f'), runeKey('j'), enterKey)
	if m.faqExpanded != 1 {
		t.Errorf("faqExpanded = %d, want 1", m.faqExpanded)
	}
	if !strings.Contains(m.View(), "If the skip will be placed on a public road") {
		t.Errorf("View() should show the permit answer, got:\n%s", m.View())
	}
	m = press(t, m, enterKey)
	if m.faqExpanded != -1 {
		t.Errorf("second enter should collapse, faqExpanded = %d", m.faqExpanded)
	}
	m = press(t, m, runeKey('f'))
	if m.overlay != overlayNone {
		t.Error("f should close the FAQ")
	}
}

func TestModel_SizeGuideScrolling(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m = press(t, m, runeKey('g'), runeKey('k'))
	if m.guideOffset != 0 {
		t.Errorf("guideOffset = %d, want 0", m.guideOffset)
	}
	for i := 0; i < 20; i++ {
		m = press(t, m, runeKey('j'))
	}
	want := 9 - m.guidePageSize()
	if m.guideOffset != want {
		t.Errorf("guideOffset = %d, want %d", m.guideOffset, want)
	}
}

func TestModel_ToggleLayoutAndHelp(t *testing.T) {
	m := readyModel(t, &stubFetcher{offers: testutil.ExampleOffers(t)}, nil)

	m = press(t, m, runeKey('v'))
	if m.layout != view.LayoutList {
		t.Errorf("layout = %q, want list", m.layout)
	}
	if !strings.Contains(m.View(), "View: List") {
		t.Error("filter bar should show the list layout")
	}

	m = press(t, m, runeKey('?'))
	if !m.showHelp || !strings.Contains(m.View(), "Filters:") {
		t.Error("? should expand the help")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestQuitNavigator(t *testing.T) {
	var nav QuitNavigator
	if msgs := runCmd(nav.Continue(selection.ContinueRequest{})); len(msgs) != 1 {
		t.Fatalf("Continue() produced %d messages, want 1", len(msgs))
	} else if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Errorf("Continue() produced %T, want tea.QuitMsg", msgs[0])
	}
	if nav.Back() != nil {
		t.Error("Back() should be nil")
	}
}

func TestModel_FetchFailureLoggedBySeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		sev   string
	}{
		{"remote", errors.NewRemoteFetchError(503), "ERROR", "error"},
		{"validation", errors.NewValidationError("must be positive"), "WARN", "warning"},
		{"plain", errors.New("boom"), "ERROR", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logger, err := logging.NewLogger(dir, logging.LevelDebug)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			t.Cleanup(func() { _ = logger.Close() })

			m := NewModel(context.Background(), Config{
				Fetcher:  &stubFetcher{},
				Postcode: testutil.ExamplePostcode,
				Area:     testutil.ExampleArea,
				Logger:   logger,
			})
			t.Cleanup(m.shutdown)
			update(t, m, msg.OffersLoadedMsg{Generation: 1, Err: tt.err})

			data, err := os.ReadFile(filepath.Join(dir, logging.FileName))
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			var line string
			for _, l := range strings.Split(string(data), "\n") {
				if strings.Contains(l, `"msg":"fetch failed"`) {
					line = l
				}
			}
			if line == "" {
				t.Fatalf("no fetch failure logged, got:\n%s", data)
			}
			for _, want := range []string{`"level":"` + tt.level + `"`, `"severity":"` + tt.sev + `"`} {
				if !strings.Contains(line, want) {
					t.Errorf("log line = %s, want %s", line, want)
				}
			}
		})
	}
}

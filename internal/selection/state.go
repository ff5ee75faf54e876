// Package selection implements the skip selector's state machine.
//
// A State moves between three statuses:
//
//	Loading --Loaded--> Ready
//	Loading --Failed--> Errored --Retry--> Loading
//
// While Ready, the filter toggles and the selected offer change
// independently of each other. Every fetch is identified by a generation
// number; a result carrying an older generation, or arriving after Close,
// is rejected without touching the state.
//
// State is not safe for concurrent use. The UI event loop owns it and is the
// only writer.
package selection

import (
	"fmt"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/filter"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// Status is the fetch lifecycle status of a State.
type Status int

const (
	// Loading means a catalog fetch is pending.
	Loading Status = iota
	// Ready means the catalog was fetched and offers can be selected.
	Ready
	// Errored means the fetch failed; the user may retry.
	Errored
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ContinueRequest is handed to the next step when the user continues with
// a selected offer.
type ContinueRequest struct {
	Offer skip.Offer
	Total float64
}

// State is the selector page state.
type State struct {
	status     Status
	generation uint64
	closed     bool

	catalog []skip.Offer
	visible []skip.Offer
	filters filter.State

	selected    skip.Offer
	hasSelected bool

	err error
}

// New returns a State in Loading for fetch generation 1.
func New() *State {
	return &State{status: Loading, generation: 1}
}

// Status returns the current status.
func (s *State) Status() Status { return s.status }

// Generation returns the generation of the current or most recent fetch.
func (s *State) Generation() uint64 { return s.generation }

// Closed reports whether Close was called.
func (s *State) Closed() bool { return s.closed }

// Err returns the fetch failure while Errored, nil otherwise.
func (s *State) Err() error { return s.err }

// Filters returns the current filter toggles.
func (s *State) Filters() filter.State { return s.filters }

// Catalog returns a copy of every fetched offer in server order.
func (s *State) Catalog() []skip.Offer {
	return append([]skip.Offer(nil), s.catalog...)
}

// Visible returns a copy of the offers that pass the current filters.
func (s *State) Visible() []skip.Offer {
	return append([]skip.Offer(nil), s.visible...)
}

// Selected returns the selected offer. The offer stays selected even when
// the current filters hide it.
func (s *State) Selected() (skip.Offer, bool) {
	return s.selected, s.hasSelected
}

// SelectedVisible reports whether the selected offer passes the current
// filters.
func (s *State) SelectedVisible() bool {
	return s.hasSelected && s.filters.Matches(s.selected)
}

// Loaded records a successful fetch for generation gen and moves to Ready.
func (s *State) Loaded(gen uint64, offers []skip.Offer) error {
	if err := s.acceptResult(gen); err != nil {
		return err
	}
	s.status = Ready
	s.catalog = append([]skip.Offer(nil), offers...)
	s.err = nil
	s.hasSelected = false
	s.selected = skip.Offer{}
	s.recompute()
	return nil
}

// Failed records a failed fetch for generation gen and moves to Errored.
func (s *State) Failed(gen uint64, cause error) error {
	if err := s.acceptResult(gen); err != nil {
		return err
	}
	if cause == nil {
		cause = errors.New("fetch failed")
	}
	s.status = Errored
	s.err = cause
	return nil
}

// acceptResult checks that a fetch result for gen may be applied.
func (s *State) acceptResult(gen uint64) error {
	switch {
	case s.closed:
		return errors.ErrClosed
	case gen != s.generation:
		return fmt.Errorf("%w: generation %d, current %d", errors.ErrStaleResult, gen, s.generation)
	case s.status != Loading:
		return fmt.Errorf("%w: fetch result while %s", errors.ErrInvalidTransition, s.status)
	}
	return nil
}

// ToggleFilter flips the named filter toggle and recomputes the visible
// offers. The selection is left alone.
func (s *State) ToggleFilter(name string) error {
	if err := s.requireReady("toggle filter"); err != nil {
		return err
	}
	if err := s.filters.Toggle(name); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// ResetFilters turns every filter toggle off.
func (s *State) ResetFilters() error {
	if err := s.requireReady("reset filters"); err != nil {
		return err
	}
	s.filters.Reset()
	s.recompute()
	return nil
}

// Select makes the catalog offer with the given id the selection,
// replacing any previous one. The offer need not pass the current filters.
// An unknown id returns a *errors.NotFoundError and leaves the state
// unchanged.
func (s *State) Select(id int64) error {
	if err := s.requireReady("select"); err != nil {
		return err
	}
	for _, o := range s.catalog {
		if o.ID == id {
			s.selected = o
			s.hasSelected = true
			return nil
		}
	}
	return errors.NewNotFoundError("offer", fmt.Sprint(id))
}

// ClearSelection drops the current selection. Used when navigating back.
func (s *State) ClearSelection() {
	s.selected = skip.Offer{}
	s.hasSelected = false
}

// Retry starts a new fetch generation after a failure. It returns
// ErrFetchInProgress while a fetch is pending.
func (s *State) Retry() error {
	switch {
	case s.closed:
		return errors.ErrClosed
	case s.status == Loading:
		return errors.ErrFetchInProgress
	case s.status != Errored:
		return fmt.Errorf("%w: retry while %s", errors.ErrInvalidTransition, s.status)
	}
	s.generation++
	s.status = Loading
	s.err = nil
	return nil
}

// Continue returns the request for the next step. It fails with
// ErrNoSelection unless an offer is selected.
func (s *State) Continue() (ContinueRequest, error) {
	if s.closed {
		return ContinueRequest{}, errors.ErrClosed
	}
	if s.status != Ready || !s.hasSelected {
		return ContinueRequest{}, errors.ErrNoSelection
	}
	return ContinueRequest{
		Offer: s.selected,
		Total: pricing.TotalPrice(s.selected),
	}, nil
}

// Close tears the state down. Fetch results delivered afterwards are
// rejected with ErrClosed.
func (s *State) Close() {
	s.closed = true
}

func (s *State) requireReady(op string) error {
	if s.closed {
		return errors.ErrClosed
	}
	if s.status != Ready {
		return fmt.Errorf("%w: %s while %s", errors.ErrInvalidTransition, op, s.status)
	}
	return nil
}

func (s *State) recompute() {
	s.visible = s.filters.Apply(s.catalog)
}

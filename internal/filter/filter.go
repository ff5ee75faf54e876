// Package filter holds the user's filter toggles and applies them to a list
// of skip offers.
package filter

import (
	"fmt"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// Toggle names accepted by State.Toggle.
const (
	AllowedOnRoad    = "allowed_on_road"
	AllowsHeavyWaste = "allows_heavy_waste"
)

// Category defines a filter toggle with its display properties.
type Category struct {
	Key      string // Toggle name (e.g., "allowed_on_road")
	Label    string // Display label (e.g., "Allowed on road")
	Shortcut string // Keyboard shortcut (e.g., "o/1")
}

// Categories is the set of filter toggles in display order.
var Categories = []Category{
	{Key: AllowedOnRoad, Label: "Allowed on road", Shortcut: "o/1"},
	{Key: AllowsHeavyWaste, Label: "Allows heavy waste", Shortcut: "h/2"},
}

// State is the set of active filter toggles. The zero value has every
// toggle off and lets all offers through.
type State struct {
	AllowedOnRoad    bool
	AllowsHeavyWaste bool
}

// Names returns the toggle names in display order.
func Names() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Key
	}
	return names
}

// Toggle flips the named toggle.
func (s *State) Toggle(name string) error {
	switch name {
	case AllowedOnRoad:
		s.AllowedOnRoad = !s.AllowedOnRoad
	case AllowsHeavyWaste:
		s.AllowsHeavyWaste = !s.AllowsHeavyWaste
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFilter, name)
	}
	return nil
}

// Enabled reports whether the named toggle is on. Unknown names are off.
func (s State) Enabled(name string) bool {
	switch name {
	case AllowedOnRoad:
		return s.AllowedOnRoad
	case AllowsHeavyWaste:
		return s.AllowsHeavyWaste
	}
	return false
}

// Reset turns every toggle off.
func (s *State) Reset() {
	*s = State{}
}

// Active reports whether any toggle is on.
func (s State) Active() bool {
	return s.AllowedOnRoad || s.AllowsHeavyWaste
}

// Matches reports whether o satisfies every active toggle.
func (s State) Matches(o skip.Offer) bool {
	if s.AllowedOnRoad && !o.AllowedOnRoad {
		return false
	}
	if s.AllowsHeavyWaste && !o.AllowsHeavyWaste {
		return false
	}
	return true
}

// Apply returns the offers that match every active toggle, in their
// original order. The input slice is never modified.
func (s State) Apply(offers []skip.Offer) []skip.Offer {
	filtered := make([]skip.Offer, 0, len(offers))
	for _, o := range offers {
		if s.Matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

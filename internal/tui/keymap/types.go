// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so that the same key can mean different
// things in the offer browser, the overlays and the error screen.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
type Mode string

const (
	ModeLoading   Mode = "loading"    // Catalog fetch pending
	ModeBrowse    Mode = "browse"     // Browsing, filtering and selecting offers
	ModeErrored   Mode = "errored"    // Fetch failed, retry available
	ModeSizeGuide Mode = "size_guide" // Size guide overlay
	ModeFAQ       Mode = "faq"        // FAQ overlay
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Browse mode commands
const (
	CmdNextOffer     Command = "next_offer"
	CmdPrevOffer     Command = "prev_offer"
	CmdFirstOffer    Command = "first_offer"
	CmdLastOffer     Command = "last_offer"
	CmdSelectOffer   Command = "select_offer"
	CmdToggleRoad    Command = "toggle_road"
	CmdToggleHeavy   Command = "toggle_heavy"
	CmdResetFilters  Command = "reset_filters"
	CmdToggleView    Command = "toggle_view"
	CmdContinue      Command = "continue"
	CmdBack          Command = "back"
	CmdOpenSizeGuide Command = "open_size_guide"
	CmdOpenFAQ       Command = "open_faq"
	CmdToggleHelp    Command = "toggle_help"
)

// Errored mode commands
const (
	CmdRetry Command = "retry"
)

// Overlay commands
const (
	CmdCloseOverlay Command = "close_overlay"
	CmdScrollDown   Command = "scroll_down"
	CmdScrollUp     Command = "scroll_up"
	CmdExpandItem   Command = "expand_item"
)

// CmdQuit exits the application in every mode.
const CmdQuit Command = "quit"

// Modifier represents keyboard modifiers.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For rune keys use tea.KeyRunes
	// and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Modifiers that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string

	// Hidden bindings work but are left out of the help bar.
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		switch kb.KeyType {
		case tea.KeyUp:
			return prefix + "↑"
		case tea.KeyDown:
			return prefix + "↓"
		case tea.KeyLeft:
			return prefix + "←"
		case tea.KeyRight:
			return prefix + "→"
		}
		return prefix + kb.KeyType.String()
	}
	return prefix + string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger cmd in mode.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// HelpEntry is one command as listed in the help bar, with every key that
// triggers it.
type HelpEntry struct {
	Keys        []string
	Description string
	Category    string
}

// Help returns the visible commands of a mode in declaration order, with
// the keys of bindings sharing a command merged into one entry.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	index := make(map[Command]int)
	var entries []HelpEntry
	for _, binding := range mb.Bindings {
		if binding.Hidden {
			continue
		}
		if i, seen := index[binding.Command]; seen {
			entries[i].Keys = append(entries[i].Keys, binding.String())
			continue
		}
		index[binding.Command] = len(entries)
		entries = append(entries, HelpEntry{
			Keys:        []string{binding.String()},
			Description: binding.Description,
			Category:    binding.Category,
		})
	}
	return entries
}

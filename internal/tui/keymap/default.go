package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeLoading:   defaultLoadingBindings(),
			ModeBrowse:    defaultBrowseBindings(),
			ModeErrored:   defaultErroredBindings(),
			ModeSizeGuide: defaultSizeGuideBindings(),
			ModeFAQ:       defaultFAQBindings(),
		},
	}
}

var quitBindings = []KeyBinding{
	{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
	{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
}

func withQuit(bindings ...KeyBinding) []KeyBinding {
	return append(bindings, quitBindings...)
}

func defaultLoadingBindings() *ModeBindings {
	return &ModeBindings{
		Mode:     ModeLoading,
		Bindings: withQuit(),
	}
}

func defaultBrowseBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBrowse,
		Bindings: withQuit([]KeyBinding{
			// Navigation
			{KeyType: tea.KeyRight, Command: CmdNextOffer, Description: "Next skip", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdNextOffer, Description: "Next skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdNextOffer, Description: "Next skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyTab, Command: CmdNextOffer, Description: "Next skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyLeft, Command: CmdPrevOffer, Description: "Previous skip", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdPrevOffer, Description: "Previous skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdPrevOffer, Description: "Previous skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevOffer, Description: "Previous skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyHome, Command: CmdFirstOffer, Description: "First skip", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyEnd, Command: CmdLastOffer, Description: "Last skip", Category: "Navigation", Hidden: true},

			// Selection
			{KeyType: tea.KeyEnter, Command: CmdSelectOffer, Description: "Select", Category: "Selection"},
			{KeyType: tea.KeySpace, Command: CmdSelectOffer, Description: "Select", Category: "Selection", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdContinue, Description: "Continue", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdBack, Description: "Back", Category: "Selection"},
			{KeyType: tea.KeyEsc, Command: CmdBack, Description: "Back", Category: "Selection", Hidden: true},

			// Filters
			{KeyType: tea.KeyRunes, Rune: 'o', Command: CmdToggleRoad, Description: "Road filter", Category: "Filters"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdToggleRoad, Description: "Road filter", Category: "Filters", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdToggleHeavy, Description: "Heavy waste filter", Category: "Filters"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdToggleHeavy, Description: "Heavy waste filter", Category: "Filters", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdResetFilters, Description: "Reset filters", Category: "Filters"},

			// View
			{KeyType: tea.KeyRunes, Rune: 'v', Command: CmdToggleView, Description: "Cards/List", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdOpenSizeGuide, Description: "Size guide", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdOpenFAQ, Description: "FAQ", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "More keys", Category: "View"},
		}...),
	}
}

func defaultErroredBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeErrored,
		Bindings: withQuit([]KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRetry, Description: "Try again", Category: "Recovery"},
			{KeyType: tea.KeyRunes, Rune: 'R', Command: CmdRetry, Description: "Try again", Category: "Recovery", Hidden: true},
			{KeyType: tea.KeyEnter, Command: CmdRetry, Description: "Try again", Category: "Recovery", Hidden: true},
		}...),
	}
}

func overlayBindings(mode Mode, toggle rune, extra ...KeyBinding) *ModeBindings {
	bindings := []KeyBinding{
		{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Down", Category: "Navigation"},
		{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Down", Category: "Navigation", Hidden: true},
		{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Up", Category: "Navigation"},
		{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Up", Category: "Navigation", Hidden: true},
	}
	bindings = append(bindings, extra...)
	bindings = append(bindings,
		KeyBinding{KeyType: tea.KeyEsc, Command: CmdCloseOverlay, Description: "Close", Category: "View"},
		KeyBinding{KeyType: tea.KeyRunes, Rune: toggle, Command: CmdCloseOverlay, Description: "Close", Category: "View", Hidden: true},
	)
	return &ModeBindings{Mode: mode, Bindings: withQuit(bindings...)}
}

func defaultSizeGuideBindings() *ModeBindings {
	return overlayBindings(ModeSizeGuide, 'g')
}

func defaultFAQBindings() *ModeBindings {
	return overlayBindings(ModeFAQ, 'f',
		KeyBinding{KeyType: tea.KeyEnter, Command: CmdExpandItem, Description: "Show answer", Category: "Navigation"},
		KeyBinding{KeyType: tea.KeySpace, Command: CmdExpandItem, Description: "Show answer", Category: "Navigation", Hidden: true},
	)
}

// Package styles defines the lipgloss styles shared by the TUI views.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - emerald accents on a dark surface
	PrimaryColor   = lipgloss.Color("#34D399") // Emerald (emerald-400)
	SecondaryColor = lipgloss.Color("#10B981") // Emerald (emerald-500)
	AccentColor    = lipgloss.Color("#6EE7B7") // Emerald (emerald-300)
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#4B5563") // Gray (gray-600)

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Page header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			MarginBottom(1)

	// Progress indicator
	StepDone = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	StepCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SecondaryColor).
			Padding(0, 1)

	StepPending = lipgloss.NewStyle().
			Foreground(MutedColor)

	StepSeparator = lipgloss.NewStyle().
			Foreground(BorderColor)

	// Filter toggles
	ToggleOn = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SecondaryColor).
			Padding(0, 1)

	ToggleOff = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	// Offer cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardFocused = Card.
			BorderForeground(AccentColor)

	CardSelected = Card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(PrimaryColor)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	Badge = lipgloss.NewStyle().
		Foreground(SurfaceColor).
		Background(PrimaryColor).
		Bold(true).
		Padding(0, 1)

	Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	// List rows
	ListRow = lipgloss.NewStyle().
		Padding(0, 1)

	ListRowFocused = ListRow.
			Foreground(TextColor).
			Background(SurfaceColor)

	ListRowSelected = ListRow.
			Bold(true).
			Foreground(PrimaryColor)

	// Selection summary panel
	Summary = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2).
		MarginTop(1)

	SummaryLabel = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(18)

	// Overlays (size guide, FAQ)
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	OverlayTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// Status messages
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)

// Check returns a check or cross mark for a permission flag.
func Check(ok bool) string {
	if ok {
		return Secondary.Render("✓")
	}
	return Error.Render("✗")
}

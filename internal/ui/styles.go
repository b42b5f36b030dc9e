package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused tiles and buttons
	ColorDanger    = "196" // Red - for alerts
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorFrame     = "238" // Dark gray - for tile and image frames
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Page title
	Heading      lipgloss.Style // Gallery heading
	TitleWarning lipgloss.Style // Alert title

	// Box styles
	BoxDanger lipgloss.Style // Alert box

	// Grid
	Tile        lipgloss.Style // Unfocused thumbnail tile
	TileFocused lipgloss.Style // Focused thumbnail tile
	TileLabel   lipgloss.Style // Title overlay inside a tile

	// Lightbox
	Lightbox      lipgloss.Style // Outer lightbox frame
	ImageFrame    lipgloss.Style // Scaled "image" frame
	Button        lipgloss.Style // Control button
	ButtonFocused lipgloss.Style // Control button with focus
	NavArrow      lipgloss.Style // ‹ and ›

	// Text styles
	Muted  lipgloss.Style
	Normal lipgloss.Style
	Hint   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Empty  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorFrame)).
		Width(tileWidth - 2).
		Height(tileHeight - 2),
	TileFocused: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Width(tileWidth - 2).
		Height(tileHeight - 2),
	TileLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Lightbox: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	ImageFrame: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorFrame)).
		Align(lipgloss.Center, lipgloss.Center),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true).
		Padding(0, 1),
	NavArrow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

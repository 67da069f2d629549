package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent   = colorPink
	colorFocus    = colorLavender
	colorError    = colorRed
	colorReadonly = colorOverlay1
	colorHelp     = colorOverlay1
	colorValue    = colorTeal
)

// Theme bundles the styles every tui widget renders with.
type Theme struct {
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Value    lipgloss.Style
	Readonly lipgloss.Style
	Cursor   lipgloss.Style
	Button   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Title    lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTheme returns the Catppuccin Mocha styling.
func DefaultTheme() Theme {
	return Theme{
		Label:    lipgloss.NewStyle().Foreground(colorText),
		Focused:  lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(colorValue),
		Readonly: lipgloss.NewStyle().Foreground(colorReadonly),
		Cursor:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Button:   lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(colorHelp),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Title:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Border:   lipgloss.NewStyle().Foreground(colorSurface1),
	}
}

// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Split demo styles
	Toolbar        lipgloss.Style
	Button         lipgloss.Style
	PaneBorder     lipgloss.Style
	PaneTitle      lipgloss.Style
	PaneSize       lipgloss.Style
	Handle         lipgloss.Style
	HandleFocused  lipgloss.Style
	HandleDragging lipgloss.Style
	StatusBar      lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultConfig().Appearance.Palette
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),

		// Semantic colors (not in config)
		Error:   lipgloss.Color("#f38ba8"),
		Warning: lipgloss.Color("#f9e2af"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	// Demo chrome
	t.Toolbar = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.PaneBorder = lipgloss.NewStyle().
		Foreground(t.Border)

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.PaneSize = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Handle = lipgloss.NewStyle().
		Foreground(t.Border)

	t.HandleFocused = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HandleDragging = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SplitKeyMap defines keybindings for the split demo.
type SplitKeyMap struct {
	NextHandle key.Binding
	PrevHandle key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SplitKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextHandle, k.Left, k.Right, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SplitKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextHandle, k.PrevHandle},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Reset, k.Help, k.Quit},
	}
}

// DefaultSplitKeyMap returns the default split demo keybindings.
func DefaultSplitKeyMap() SplitKeyMap {
	return SplitKeyMap{
		NextHandle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next handle"),
		),
		PrevHandle: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev handle"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "shrink left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "grow left"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "shrink top"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "grow top"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

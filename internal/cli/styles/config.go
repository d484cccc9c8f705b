package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists yet.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.Subtle.Render("(not created yet, run 'splitter config init')")
	if exists {
		status = ""
	}
	return fmt.Sprintf("\n  %s Config %s %s\n", iconStyle.Render(IconConfig), r.theme.Highlight.Render(path), status)
}

// RenderCreated renders the success message after writing a file.
func (r *ConfigRenderer) RenderCreated(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s Wrote %s to %s", iconStyle.Render(IconCheck), what, r.theme.Subtle.Render(path))
}

// RenderExists renders the refusal to overwrite an existing config.
func (r *ConfigRenderer) RenderExists(path string) string {
	return fmt.Sprintf(
		"  %s %s already exists, use --force to overwrite it",
		r.theme.WarningStyle.Render(IconInfo),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

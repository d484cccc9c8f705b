package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/domain/build"
)

// VersionRenderer renders build info next to a small logo.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a new version renderer with the given theme.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *VersionRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

// RenderShort renders "splitter <version>" on one line.
func (r *VersionRenderer) RenderShort(info build.Info) string {
	return fmt.Sprintf("%s %s", r.theme.Title.Render(build.Name), r.theme.Highlight.Render(info.Version))
}

func (r *VersionRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	handleStyle := lipgloss.NewStyle().Foreground(r.theme.Border)

	pane := "██"
	row := pane + handleStyle.Render("│") + pane + handleStyle.Render("│") + pane
	rows := make([]string, 0, 4)
	for range 4 {
		rows = append(rows, row)
	}

	return logoStyle.MarginTop(1).MarginLeft(2).Render(strings.Join(rows, "\n"))
}

func (r *VersionRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, label, value string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(label), valStyle.Render(value))
	}

	lines := []string{
		r.theme.Title.Render(build.Name),
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}

	return strings.Join(lines, "\n")
}

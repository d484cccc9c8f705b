package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output: the cursor row looks like every other row.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// DragTableColumns returns columns for the drag replay table.
// sizesWidth fits the formatted pane sizes.
func DragTableColumns(sizesWidth int) []table.Column {
	return []table.Column{
		{Title: "Step", Width: 4},
		{Title: "Coordinate", Width: 10},
		{Title: "Outcome", Width: 10},
		{Title: "Sizes", Width: max(sizesWidth, len("Sizes"))},
	}
}

// DragStepRow is one replayed pointer move.
type DragStepRow struct {
	Step       int
	Coordinate float64
	Outcome    string
	Sizes      string
}

// ToRow converts to table.Row.
func (d DragStepRow) ToRow() table.Row {
	return table.Row{
		strconv.Itoa(d.Step),
		strconv.FormatFloat(d.Coordinate, 'f', 2, 64),
		d.Outcome,
		d.Sizes,
	}
}

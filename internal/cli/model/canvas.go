package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/splitter/internal/domain/entity"
)

// cellStyle selects the lipgloss style a canvas cell is rendered with.
type cellStyle uint8

const (
	styleBlank cellStyle = iota
	styleBorder
	styleTitle
	styleSize
	styleHandle
	styleHandleFocused
	styleHandleDragging
)

type cell struct {
	r     rune
	width int // 0 for the trailing half of a wide rune
	style cellStyle
}

func blankCell() cell {
	return cell{r: ' ', width: 1, style: styleBlank}
}

// canvas is a fixed-size buffer of styled cells that panes and handles are
// painted onto in order. Later paints win.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	width = max(width, 0)
	height = max(height, 0)
	rows := make([][]cell, height)
	for y := range rows {
		rows[y] = make([]cell, width)
		for x := range rows[y] {
			rows[y][x] = blankCell()
		}
	}
	return &canvas{width: width, height: height, cells: rows}
}

func (c *canvas) set(x, y int, r rune, style cellStyle) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, width: 1, style: style}
}

// fill paints every cell of rect with r.
func (c *canvas) fill(rect entity.CellRect, r rune, style cellStyle) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			c.set(x, y, r, style)
		}
	}
}

// drawText writes text from (x, y), clipped to maxWidth cells.
func (c *canvas) drawText(x, y, maxWidth int, text string, style cellStyle) {
	if y < 0 || y >= c.height {
		return
	}
	limit := min(x+maxWidth, c.width)
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if col+w > limit {
			break
		}
		if col >= 0 {
			c.cells[y][col] = cell{r: r, width: w, style: style}
			if w == 2 {
				c.cells[y][col+1] = cell{width: 0, style: style}
			}
		}
		col += w
	}
}

// drawBox outlines rect with border. Rects smaller than 2x2 are filled with
// the border's vertical glyph instead.
func (c *canvas) drawBox(rect entity.CellRect, border lipgloss.Border, style cellStyle) {
	if rect.Empty() {
		return
	}
	if rect.W < 2 || rect.H < 2 {
		c.fill(rect, firstRune(border.Left, '│'), style)
		return
	}

	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	top, bot := firstRune(border.Top, '─'), firstRune(border.Bottom, '─')
	left, rgt := firstRune(border.Left, '│'), firstRune(border.Right, '│')

	for x := rect.X + 1; x < right; x++ {
		c.set(x, rect.Y, top, style)
		c.set(x, bottom, bot, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		c.set(rect.X, y, left, style)
		c.set(right, y, rgt, style)
	}
	c.set(rect.X, rect.Y, firstRune(border.TopLeft, '┌'), style)
	c.set(right, rect.Y, firstRune(border.TopRight, '┐'), style)
	c.set(rect.X, bottom, firstRune(border.BottomLeft, '└'), style)
	c.set(right, bottom, firstRune(border.BottomRight, '┘'), style)
}

// render joins the canvas rows, styling runs of cells that share a style.
func (c *canvas) render(styles map[cellStyle]lipgloss.Style) string {
	lines := make([]string, c.height)
	var run strings.Builder
	for y, row := range c.cells {
		var line strings.Builder
		current := styleBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if s, ok := styles[current]; ok {
				line.WriteString(s.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.width == 0 {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

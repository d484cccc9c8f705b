// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

// Toolbar zone IDs.
const (
	zoneReset = "toolbar-reset"
	zoneHelp  = "toolbar-help"
	zoneQuit  = "toolbar-quit"
)

const toolbarHeight = 1

// ConfigReloadedMsg is sent when the config file changed on disk.
// The demo re-themes; the layout keeps its current sizes.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// splitStatus is shared by the model and the observer it subscribes to the
// tree, so changes show up whatever copy of the model is current.
type splitStatus struct {
	decimals int
	last     string
}

// OnSplitChanged implements port.SplitObserver.
func (s *splitStatus) OnSplitChanged(change entity.SplitChange) {
	handle := "all"
	if change.Handle >= 0 {
		handle = strconv.Itoa(change.Handle)
	}
	s.last = fmt.Sprintf("%s %s [%s] %s",
		change.EngineID, change.Reason, handle, layout.FormatTracks(change.Current.All(), s.decimals))
}

// SplitModel is the Bubble Tea model for the interactive split demo.
type SplitModel struct {
	// UI components
	help  help.Model
	keys  styles.SplitKeyMap
	zones *zone.Manager

	// State
	tree    *layout.Tree
	handles []layout.HandleRef
	focus   int
	status  *splitStatus
	width   int
	height  int
	area    entity.CellRect

	// Config
	appearance config.AppearanceConfig
	step       float64

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// SplitModelConfig holds configuration for the split model.
type SplitModelConfig struct {
	// Spec is the layout to show.
	Spec *entity.SplitSpec
	// Config supplies the keyboard step and appearance.
	Config *config.Config
	// Zones tracks the toolbar buttons. Optional.
	Zones *zone.Manager
}

// NewSplitModel builds the layout tree for cfg.Spec and the model driving it.
func NewSplitModel(ctx context.Context, theme *styles.Theme, cfg SplitModelConfig) (SplitModel, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.DefaultConfig()
	}

	status := &splitStatus{decimals: appCfg.Appearance.Decimals}
	ctx = logging.WithComponent(ctx, "split-demo")
	tree, err := layout.NewTree(ctx, cfg.Spec, status)
	if err != nil {
		return SplitModel{}, fmt.Errorf("build layout: %w", err)
	}

	return SplitModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultSplitKeyMap(),
		zones:      cfg.Zones,
		tree:       tree,
		handles:    tree.Handles(),
		status:     status,
		width:      80,
		height:     24,
		appearance: appCfg.Appearance,
		step:       appCfg.Resize.KeyboardStepPercent,
		ctx:        ctx,
		theme:      theme,
	}.relayout(), nil
}

// Tree returns the layout tree the model drives.
func (m SplitModel) Tree() *layout.Tree {
	return m.tree
}

// Area returns the cells the panes are laid out in.
func (m SplitModel) Area() entity.CellRect {
	return m.area
}

// Focused returns the handle keyboard resizing applies to.
func (m SplitModel) Focused() (layout.HandleRef, bool) {
	if len(m.handles) == 0 {
		return layout.HandleRef{}, false
	}
	return m.handles[m.focus], true
}

// Init implements tea.Model.
func (m SplitModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SplitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.relayout(), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ConfigReloadedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.theme = styles.NewTheme(msg.Config)
		m.help = styles.NewStyledHelp(m.theme)
		m.help.Width = m.width
		m.appearance = msg.Config.Appearance
		m.step = msg.Config.Resize.KeyboardStepPercent
		m.status.decimals = msg.Config.Appearance.Decimals
		logging.FromContext(m.ctx).Debug().Float64("step", m.step).Msg("config reloaded")
		return m.relayout(), nil
	}

	return m, nil
}

func (m SplitModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextHandle):
		if n := len(m.handles); n > 0 {
			m.focus = (m.focus + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevHandle):
		if n := len(m.handles); n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.nudge(entity.DirectionRow, -m.step), nil

	case key.Matches(msg, m.keys.Right):
		return m.nudge(entity.DirectionRow, m.step), nil

	case key.Matches(msg, m.keys.Up):
		return m.nudge(entity.DirectionColumn, -m.step), nil

	case key.Matches(msg, m.keys.Down):
		return m.nudge(entity.DirectionColumn, m.step), nil

	case key.Matches(msg, m.keys.Reset):
		m.tree.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.relayout(), nil
	}

	return m, nil
}

// nudge moves the focused handle when its split runs along dir.
func (m SplitModel) nudge(dir entity.LayoutDirection, delta float64) SplitModel {
	ref, ok := m.Focused()
	if !ok || ref.Engine.Direction() != dir {
		return m
	}
	if _, err := m.tree.Nudge(ref, delta); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Str("engine_id", ref.Engine.ID()).Msg("nudge failed")
	}
	return m
}

func (m SplitModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.area.Contains(msg.X, msg.Y) {
			return m, nil
		}
		if m.tree.PointerDown(msg.X, msg.Y) {
			m.focusDragged()
		}
		return m, nil

	case tea.MouseActionMotion:
		if _, dragging := m.tree.Dragging(); !dragging {
			return m, nil
		}
		if !m.area.Contains(msg.X, msg.Y) {
			m.tree.PointerLeave()
			return m, nil
		}
		m.tree.PointerMove(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionRelease:
		if _, dragging := m.tree.Dragging(); dragging {
			m.tree.PointerUp()
			return m, nil
		}
		return m.handleToolbarClick(msg)
	}

	return m, nil
}

func (m SplitModel) handleToolbarClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.inZone(zoneQuit, msg):
		return m, tea.Quit
	case m.inZone(zoneReset, msg):
		m.tree.Reset()
		return m, nil
	case m.inZone(zoneHelp, msg):
		m.help.ShowAll = !m.help.ShowAll
		return m.relayout(), nil
	}
	return m, nil
}

func (m SplitModel) inZone(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m *SplitModel) focusDragged() {
	ref, ok := m.tree.Dragging()
	if !ok {
		return
	}
	for i, h := range m.handles {
		if h == ref {
			m.focus = i
			return
		}
	}
}

// relayout fits the tree between the toolbar and the footer.
func (m SplitModel) relayout() SplitModel {
	footer := lipgloss.Height(m.footerView())
	m.area = entity.CellRect{
		X: 0,
		Y: toolbarHeight,
		W: max(m.width, 0),
		H: max(m.height-toolbarHeight-footer, 0),
	}
	m.tree.Arrange(m.area)
	return m
}

// View implements tea.Model.
func (m SplitModel) View() string {
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.toolbarView(),
		m.panesView(),
		m.footerView(),
	)
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func (m SplitModel) toolbarView() string {
	button := func(id, label string) string {
		rendered := m.theme.Button.Render(label)
		if m.zones != nil {
			rendered = m.zones.Mark(id, rendered)
		}
		return rendered
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Toolbar.Render(styles.IconPane+" splitter"),
		"  ",
		button(zoneReset, "reset"),
		" ",
		button(zoneHelp, "help"),
		" ",
		button(zoneQuit, "quit"),
	)
}

func (m SplitModel) panesView() string {
	c := newCanvas(m.area.W, m.area.H)
	arrangement := m.tree.Arrangement()
	// Canvas coordinates start at the area origin.
	local := func(r entity.CellRect) entity.CellRect {
		return entity.CellRect{X: r.X - m.area.X, Y: r.Y - m.area.Y, W: r.W, H: r.H}
	}

	border := lipgloss.RoundedBorder()
	for _, pane := range arrangement.Panes {
		rect := local(pane.Rect)
		c.drawBox(rect, border, styleBorder)
		if rect.W < 3 || rect.H < 2 {
			continue
		}
		c.drawText(rect.X+1, rect.Y, rect.W-2, " "+pane.Title+" ", styleTitle)
		if m.appearance.ShowSizes {
			label := strconv.FormatFloat(pane.Size, 'f', m.appearance.Decimals, 64) + "%"
			cx, cy := rect.Center()
			x := max(cx-runewidth.StringWidth(label)/2, rect.X+1)
			c.drawText(x, cy, rect.X+rect.W-1-x, label, styleSize)
		}
	}

	focused, hasFocus := m.Focused()
	dragged, dragging := m.tree.Dragging()
	for _, h := range arrangement.Handles {
		ref := layout.HandleRef{Engine: h.Engine, Index: h.Index}
		style := styleHandle
		switch {
		case dragging && ref == dragged:
			style = styleHandleDragging
		case hasFocus && ref == focused:
			style = styleHandleFocused
		}
		glyph := m.appearance.RowHandle
		if h.Engine.Direction() == entity.DirectionColumn {
			glyph = m.appearance.ColumnHandle
		}
		c.fill(local(h.Rect), firstRune(glyph, '│'), style)
	}

	return c.render(map[cellStyle]lipgloss.Style{
		styleBorder:         m.theme.PaneBorder,
		styleTitle:          m.theme.PaneTitle,
		styleSize:           m.theme.PaneSize,
		styleHandle:         m.theme.Handle,
		styleHandleFocused:  m.theme.HandleFocused,
		styleHandleDragging: m.theme.HandleDragging,
	})
}

func (m SplitModel) footerView() string {
	line := ""
	if ref, ok := m.Focused(); ok {
		line = fmt.Sprintf("%s handle %d  %s", ref.Engine.ID(), ref.Index, ref.Engine.FormatTracks(m.appearance.Decimals))
	}
	if m.status.last != "" {
		line += "  |  " + m.status.last
	}
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.StatusBar.Render(line),
		m.help.View(m.keys),
	)
}

package model_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/cli/model"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/ui/layout"
)

const epsilon = 1e-9

func newModel(t *testing.T, spec *entity.SplitSpec) model.SplitModel {
	t.Helper()
	if spec == nil {
		l := config.DefaultLayout()
		var err error
		spec, err = l.SplitSpec()
		require.NoError(t, err)
	}
	m, err := model.NewSplitModel(context.Background(), styles.NewTheme(nil), model.SplitModelConfig{
		Spec:   spec,
		Config: config.DefaultConfig(),
	})
	require.NoError(t, err)
	return update(t, m, tea.WindowSizeMsg{Width: 90, Height: 12})
}

func update(t *testing.T, m model.SplitModel, msg tea.Msg) model.SplitModel {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(model.SplitModel)
	require.True(t, ok)
	return updated
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func rootEngine(t *testing.T, m model.SplitModel) *layout.SplitEngine {
	t.Helper()
	engine, err := m.Tree().Engine("root")
	require.NoError(t, err)
	return engine
}

func TestNewSplitModel_LaysOutBetweenToolbarAndFooter(t *testing.T) {
	m := newModel(t, nil)

	assert.Equal(t, entity.CellRect{X: 0, Y: 1, W: 90, H: 9}, m.Area())
	handles := m.Tree().Arrangement().Handles
	require.Len(t, handles, 2)
	assert.Equal(t, entity.CellRect{X: 29, Y: 1, W: 1, H: 9}, handles[0].Rect)

	ref, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, 0, ref.Index)
}

func TestNewSplitModel_InvalidSpec(t *testing.T) {
	_, err := model.NewSplitModel(context.Background(), styles.NewTheme(nil), model.SplitModelConfig{
		Spec: &entity.SplitSpec{Direction: entity.DirectionRow, Panes: []entity.PaneSpec{{Title: "only"}}},
	})

	assert.ErrorIs(t, err, entity.ErrTooFewPanes)
}

func TestSplitModel_MouseDrag(t *testing.T) {
	// Arrange
	m := newModel(t, nil)

	// Act
	m = update(t, m, mouse(tea.MouseActionPress, 29, 3))
	_, dragging := m.Tree().Dragging()
	require.True(t, dragging)
	m = update(t, m, mouse(tea.MouseActionMotion, 44, 3))

	// Assert
	assert.InDelta(t, 50, rootEngine(t, m).Percentages()[0], epsilon)
	assert.Contains(t, m.View(), "root drag [0] 50.00%")

	m = update(t, m, mouse(tea.MouseActionRelease, 44, 3))
	_, dragging = m.Tree().Dragging()
	assert.False(t, dragging)
}

func TestSplitModel_PressAwayFromHandles(t *testing.T) {
	m := newModel(t, nil)

	m = update(t, m, mouse(tea.MouseActionPress, 4, 4))
	m = update(t, m, mouse(tea.MouseActionMotion, 44, 4))

	_, dragging := m.Tree().Dragging()
	assert.False(t, dragging)
	assert.InDelta(t, 100.0/3, rootEngine(t, m).Percentages()[0], epsilon)
}

func TestSplitModel_LeavingTheAreaEndsDrag(t *testing.T) {
	m := newModel(t, nil)
	m = update(t, m, mouse(tea.MouseActionPress, 59, 5))

	m = update(t, m, mouse(tea.MouseActionMotion, 59, 0))

	_, dragging := m.Tree().Dragging()
	assert.False(t, dragging)
}

func TestSplitModel_PressFocusesGrabbedHandle(t *testing.T) {
	m := newModel(t, nil)

	m = update(t, m, mouse(tea.MouseActionPress, 59, 5))

	ref, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, 1, ref.Index)
}

func TestSplitModel_KeyboardNudge(t *testing.T) {
	m := newModel(t, nil)
	root := rootEngine(t, m)

	m = update(t, m, keyMsg("right"))
	assert.InDelta(t, 100.0/3+5, root.Percentages()[0], epsilon)

	m = update(t, m, keyMsg("up"))
	assert.InDelta(t, 100.0/3+5, root.Percentages()[0], epsilon, "vertical keys leave row splits alone")

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("left"))
	assert.InDelta(t, 100.0/3-10, root.Percentages()[1], epsilon)

	update(t, m, keyMsg("r"))
	assert.Equal(t, entity.EqualSplit(3), root.Percentages())
}

func TestSplitModel_FocusCycles(t *testing.T) {
	m := newModel(t, nil)

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("tab"))
	ref, _ := m.Focused()
	assert.Equal(t, 0, ref.Index)

	m = update(t, m, keyMsg("shift+tab"))
	ref, _ = m.Focused()
	assert.Equal(t, 1, ref.Index)
}

func TestSplitModel_ColumnSplitUsesVerticalKeys(t *testing.T) {
	spec := &entity.SplitSpec{
		Direction: entity.DirectionColumn,
		Panes:     []entity.PaneSpec{{Title: "top"}, {Title: "bottom"}},
	}
	m := newModel(t, spec)
	root := rootEngine(t, m)

	m = update(t, m, keyMsg("right"))
	assert.Equal(t, entity.Percentages{50}, root.Percentages())

	update(t, m, keyMsg("down"))
	assert.InDelta(t, 55, root.Percentages()[0], epsilon)
}

func TestSplitModel_HelpTogglesFooter(t *testing.T) {
	m := newModel(t, nil)
	before := m.Area()

	m = update(t, m, keyMsg("?"))

	assert.Less(t, m.Area().H, before.H)
	assert.Equal(t, m.Area().H, m.Tree().Arrangement().Panes[0].Rect.H)
}

func TestSplitModel_Quit(t *testing.T) {
	m := newModel(t, nil)

	_, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSplitModel_ConfigReload(t *testing.T) {
	m := newModel(t, nil)
	cfg := config.DefaultConfig()
	cfg.Resize.KeyboardStepPercent = 10
	cfg.Appearance.Decimals = 0

	m = update(t, m, model.ConfigReloadedMsg{Config: cfg})
	m = update(t, m, keyMsg("right"))

	assert.InDelta(t, 100.0/3+10, rootEngine(t, m).Percentages()[0], epsilon)
	assert.Contains(t, m.View(), "root nudge [0] 43% 23% 33%")
}

func TestSplitModel_View(t *testing.T) {
	m := newModel(t, nil)

	view := m.View()

	assert.Contains(t, view, "splitter")
	assert.Contains(t, view, "reset")
	for _, title := range []string{"left", "center", "right"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "│")
	assert.Contains(t, view, "33.33%")
	assert.Len(t, strings.Split(view, "\n"), 12)
}

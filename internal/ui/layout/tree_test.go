package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/application/port/mocks"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/ui/layout"
)

// nestedSpec is three side-by-side panes, the middle one stacking two more.
func nestedSpec() *entity.SplitSpec {
	return &entity.SplitSpec{
		Direction: entity.DirectionRow,
		Panes: []entity.PaneSpec{
			{Title: "left"},
			{Title: "middle", Split: &entity.SplitSpec{
				Direction: entity.DirectionColumn,
				Panes:     []entity.PaneSpec{{Title: "top"}, {Title: "bottom"}},
			}},
			{Title: "right"},
		},
	}
}

var screen = entity.CellRect{X: 0, Y: 0, W: 30, H: 10}

func newTree(t *testing.T, observers ...*mocks.MockSplitObserver) *layout.Tree {
	t.Helper()
	var tree *layout.Tree
	var err error
	if len(observers) > 0 {
		tree, err = layout.NewTree(context.Background(), nestedSpec(), observers[0])
	} else {
		tree, err = layout.NewTree(context.Background(), nestedSpec())
	}
	require.NoError(t, err)
	tree.Arrange(screen)
	return tree
}

func paneRect(t *testing.T, a layout.Arrangement, id string) entity.CellRect {
	t.Helper()
	for _, p := range a.Panes {
		if p.ID == id {
			return p.Rect
		}
	}
	t.Fatalf("pane %q not arranged", id)
	return entity.CellRect{}
}

func TestNewTree_NilRoot(t *testing.T) {
	tree, err := layout.NewTree(context.Background(), nil)

	assert.Nil(t, tree)
	assert.ErrorIs(t, err, layout.ErrNilRoot)
}

func TestNewTree_NamesSplitsByPosition(t *testing.T) {
	tree := newTree(t)

	handles := tree.Handles()
	require.Len(t, handles, 3)
	assert.Equal(t, "root", handles[0].Engine.ID())
	assert.Equal(t, "root", handles[1].Engine.ID())
	assert.Equal(t, "root.1", handles[2].Engine.ID())
	assert.Equal(t, entity.DirectionColumn, handles[2].Engine.Direction())

	engine, err := tree.Engine("root.1")
	require.NoError(t, err)
	assert.Same(t, handles[2].Engine, engine)

	_, err = tree.Engine("nope")
	assert.ErrorIs(t, err, layout.ErrNodeNotFound)

	a := tree.Arrangement()
	require.Len(t, a.Panes, 4)
	assert.Equal(t, "left", a.Panes[0].Title)
	assert.Equal(t, "top", a.Panes[1].Title)
}

func TestNewTree_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		spec := nestedSpec()
		spec.ID = "main"
		spec.Panes[1].Split.ID = "main"

		_, err := layout.NewTree(context.Background(), spec)

		assert.ErrorIs(t, err, layout.ErrDuplicateSplitID)
	})

	t.Run("nested configuration error", func(t *testing.T) {
		spec := nestedSpec()
		spec.Panes[1].Split.Panes = spec.Panes[1].Split.Panes[:1]

		_, err := layout.NewTree(context.Background(), spec)

		assert.ErrorIs(t, err, entity.ErrTooFewPanes)
	})
}

func TestArrange(t *testing.T) {
	tree := newTree(t)

	a := tree.Arrangement()

	require.Len(t, a.Panes, 4)
	assert.Equal(t, entity.CellRect{X: 0, Y: 0, W: 9, H: 10}, paneRect(t, a, "root.0"))
	assert.Equal(t, entity.CellRect{X: 10, Y: 0, W: 9, H: 4}, paneRect(t, a, "root.1.0"))
	assert.Equal(t, entity.CellRect{X: 10, Y: 5, W: 9, H: 5}, paneRect(t, a, "root.1.1"))
	assert.Equal(t, entity.CellRect{X: 20, Y: 0, W: 10, H: 10}, paneRect(t, a, "root.2"))
	assert.Equal(t, 2, a.Panes[1].Depth)
	assert.InDelta(t, 50, a.Panes[1].Size, epsilon)
	assert.InDelta(t, 100.0/3, a.Panes[3].Size, 1e-6)

	require.Len(t, a.Handles, 3)
	assert.Equal(t, entity.CellRect{X: 9, Y: 0, W: 1, H: 10}, a.Handles[0].Rect)
	assert.Equal(t, entity.CellRect{X: 19, Y: 0, W: 1, H: 10}, a.Handles[1].Rect)
	assert.Equal(t, entity.CellRect{X: 10, Y: 4, W: 9, H: 1}, a.Handles[2].Rect)
}

func TestHandleAt(t *testing.T) {
	tree := newTree(t)

	ref, ok := tree.HandleAt(9, 3)
	require.True(t, ok)
	assert.Equal(t, "root", ref.Engine.ID())
	assert.Equal(t, 0, ref.Index)

	ref, ok = tree.HandleAt(12, 4)
	require.True(t, ok)
	assert.Equal(t, "root.1", ref.Engine.ID())

	_, ok = tree.HandleAt(5, 5)
	assert.False(t, ok)
}

func TestTree_DragRootHandle(t *testing.T) {
	// Arrange
	observer := mocks.NewMockSplitObserver(t)
	observer.EXPECT().OnSplitChanged(mock.MatchedBy(func(c entity.SplitChange) bool {
		return c.EngineID == "root" && c.Handle == 0
	})).Once()
	tree := newTree(t, observer)

	// Act
	require.True(t, tree.PointerDown(9, 3))
	outcome := tree.PointerMove(14, 3)

	// Assert
	assert.Equal(t, layout.MoveApplied, outcome)
	root, _ := tree.Engine("root")
	assert.InDelta(t, 50, root.Percentages()[0], epsilon)

	a := tree.Arrangement()
	assert.Equal(t, 14, a.Handles[0].Rect.X, "the handle follows the pointer cell")
	assert.Equal(t, entity.CellRect{X: 15, Y: 0, W: 4, H: 4}, paneRect(t, a, "root.1.0"))

	ref, dragging := tree.Dragging()
	require.True(t, dragging)
	assert.Equal(t, 0, ref.Index)

	tree.PointerUp()
	_, dragging = tree.Dragging()
	assert.False(t, dragging)
}

func TestTree_NestedDragLeavesParentAlone(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.Engine("root")
	nested, _ := tree.Engine("root.1")
	before := root.Percentages()

	require.True(t, tree.PointerDown(12, 4))
	assert.Equal(t, layout.MoveApplied, tree.PointerMove(12, 7))

	assert.InDelta(t, 80, nested.Percentages()[0], epsilon)
	assert.Equal(t, before, root.Percentages())
	assert.Equal(t, 7, tree.Arrangement().Handles[2].Rect.Y)
}

func TestTree_LeavingContainerEndsDrag(t *testing.T) {
	tree := newTree(t)
	nested, _ := tree.Engine("root.1")

	require.True(t, tree.PointerDown(12, 4))
	outcome := tree.PointerMove(25, 5)

	assert.Equal(t, layout.MoveIdle, outcome)
	_, dragging := nested.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, layout.MoveIdle, tree.PointerMove(12, 7))
}

func TestTree_PointerDownElsewhereEndsPreviousDrag(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.Engine("root")

	require.True(t, tree.PointerDown(9, 3))
	require.True(t, tree.PointerDown(12, 4))

	_, dragging := root.Dragging()
	assert.False(t, dragging)
	assert.False(t, tree.PointerDown(1, 1), "no handle under the pointer")
}

func TestTree_PointerLeave(t *testing.T) {
	tree := newTree(t)
	require.True(t, tree.PointerDown(19, 0))

	tree.PointerLeave()

	_, dragging := tree.Dragging()
	assert.False(t, dragging)
}

func TestTree_NudgeAndReset(t *testing.T) {
	tree := newTree(t)
	nested, _ := tree.Engine("root.1")

	moved, err := tree.Nudge(layout.HandleRef{Engine: nested, Index: 0}, 20)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, 6, tree.Arrangement().Handles[2].Rect.Y)

	tree.Reset()

	assert.Equal(t, entity.Percentages{50}, nested.Percentages())
	assert.Equal(t, 4, tree.Arrangement().Handles[2].Rect.Y)
}

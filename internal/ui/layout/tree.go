package layout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
)

// ErrNilRoot is returned when attempting to build from a nil root split.
var ErrNilRoot = errors.New("root split is nil")

// ErrNodeNotFound is returned when a split lookup fails.
var ErrNodeNotFound = errors.New("split not found")

// ErrDuplicateSplitID is returned when two splits of a layout share an ID.
var ErrDuplicateSplitID = errors.New("duplicate split id")

// splitNode is one pane of a layout tree.
// It is either:
//   - Leaf: engine is nil and the pane shows title
//   - Split: engine sizes children along its direction
type splitNode struct {
	id       string
	title    string
	engine   *SplitEngine
	children []*splitNode
}

func (n *splitNode) isLeaf() bool {
	return n.engine == nil
}

// PaneBox is where a leaf pane is drawn.
type PaneBox struct {
	ID    string
	Title string
	Depth int
	// Size is the pane's percentage of its parent split.
	Size float64
	Rect entity.CellRect
}

// HandleBox is where a handle is drawn and grabbed.
type HandleBox struct {
	Engine *SplitEngine
	Index  int
	Rect   entity.CellRect
}

// Arrangement is a laid-out tree: every leaf and every handle with its cells.
// Nested splits appear after their parent's handles.
type Arrangement struct {
	Panes   []PaneBox
	Handles []HandleBox
}

// HandleRef identifies a handle of a tree.
type HandleRef struct {
	Engine *SplitEngine
	Index  int
}

// Tree composes one SplitEngine per split of a nested layout. Engines are
// independent; the tree only lays them out and routes pointer events to the
// one being dragged.
type Tree struct {
	root    *splitNode
	engines []*SplitEngine
	rects   map[*SplitEngine]entity.CellRect

	area        entity.CellRect
	arrangement Arrangement
	active      *SplitEngine

	logger zerolog.Logger
	mu     sync.RWMutex
}

// NewTree builds an engine for every split of spec. Splits without an ID are
// named after their position ("root", "root.1", "root.1.0"). observers are
// subscribed to every engine.
func NewTree(ctx context.Context, spec *entity.SplitSpec, observers ...port.SplitObserver) (*Tree, error) {
	if spec == nil {
		return nil, ErrNilRoot
	}

	log := logging.FromContext(ctx)
	t := &Tree{
		rects:  make(map[*SplitEngine]entity.CellRect),
		logger: log.With().Str("component", "layout-tree").Logger(),
	}

	seen := make(map[string]bool)
	root, err := t.buildSplit(ctx, spec, "root", seen, observers)
	if err != nil {
		return nil, err
	}
	t.root = root

	t.logger.Debug().Int("splits", spec.SplitCount()).Int("leaves", spec.LeafCount()).Msg("layout tree built")
	return t, nil
}

func (t *Tree) buildSplit(
	ctx context.Context,
	spec *entity.SplitSpec,
	path string,
	seen map[string]bool,
	observers []port.SplitObserver,
) (*splitNode, error) {
	id := spec.ID
	if id == "" {
		id = path
	}
	if seen[id] {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSplitID, id)
	}
	seen[id] = true

	engine, err := NewSplitEngine(ctx, len(spec.Panes), spec.Direction, spec.Percentages, WithID(id))
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", id, err)
	}
	for _, observer := range observers {
		engine.Subscribe(observer)
	}
	t.engines = append(t.engines, engine)

	node := &splitNode{id: id, engine: engine}
	for i, pane := range spec.Panes {
		childPath := path + "." + strconv.Itoa(i)
		var child *splitNode
		if pane.IsLeaf() {
			child = &splitNode{id: childPath, title: pane.Title}
		} else {
			child, err = t.buildSplit(ctx, pane.Split, childPath, seen, observers)
			if err != nil {
				return nil, err
			}
			child.title = pane.Title
		}
		node.children = append(node.children, child)
	}
	return node, nil
}

// Engine finds the engine of the split with the given ID.
func (t *Tree) Engine(id string) (*SplitEngine, error) {
	for _, engine := range t.engines {
		if engine.ID() == id {
			return engine, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
}

// Handles lists every handle, parents before their nested splits.
func (t *Tree) Handles() []HandleRef {
	var refs []HandleRef
	for _, engine := range t.engines {
		for i := range engine.HandleCount() {
			refs = append(refs, HandleRef{Engine: engine, Index: i})
		}
	}
	return refs
}

// Arrange lays the tree out in area and keeps the result for hit testing.
func (t *Tree) Arrange(area entity.CellRect) Arrangement {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.area = area
	t.arrangeLocked()
	return t.arrangement
}

// Arrangement returns the result of the last Arrange, refreshed after every
// drag the tree routed.
func (t *Tree) Arrangement() Arrangement {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.arrangement
}

// arrangeLocked must be called with lock held.
func (t *Tree) arrangeLocked() {
	t.arrangement = Arrangement{}
	clear(t.rects)
	t.arrangeNode(t.root, t.area, 0, entity.PercentTotal)
}

func (t *Tree) arrangeNode(node *splitNode, rect entity.CellRect, depth int, size float64) {
	if node.isLeaf() {
		t.arrangement.Panes = append(t.arrangement.Panes, PaneBox{
			ID:    node.id,
			Title: node.title,
			Depth: depth,
			Size:  size,
			Rect:  rect,
		})
		return
	}

	engine := node.engine
	dir := engine.Direction()
	t.rects[engine] = rect

	sizes := engine.AllPercentages()
	length := rect.Length(dir)
	tracks := Tracks(sizes, length)
	last := len(tracks) - 1

	type childRect struct {
		node *splitNode
		rect entity.CellRect
		size float64
	}
	children := make([]childRect, 0, len(tracks))

	start := 0
	for i, track := range tracks {
		cells := track
		if i < last {
			// The pane's last cell is the handle.
			cells = max(track-1, 0)
			cell := min(HandleCell(tracks, i), max(length-1, 0))
			t.arrangement.Handles = append(t.arrangement.Handles, HandleBox{
				Engine: engine,
				Index:  i,
				Rect:   slice(rect, dir, cell, 1),
			})
		}
		children = append(children, childRect{node: node.children[i], rect: slice(rect, dir, start, cells), size: sizes[i]})
		start += track
	}

	for _, c := range children {
		t.arrangeNode(c.node, c.rect, depth+1, c.size)
	}
}

// slice cuts the cells [offset, offset+size) of rect along dir.
func slice(rect entity.CellRect, dir entity.LayoutDirection, offset, size int) entity.CellRect {
	if dir == entity.DirectionColumn {
		return entity.CellRect{X: rect.X, Y: rect.Y + offset, W: rect.W, H: size}
	}
	return entity.CellRect{X: rect.X + offset, Y: rect.Y, W: size, H: rect.H}
}

// HandleAt returns the handle drawn at cell (x, y). Handles of collapsed
// panes can share a cell; the later handle wins.
func (t *Tree) HandleAt(x, y int) (HandleRef, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.handleAtLocked(x, y)
}

func (t *Tree) handleAtLocked(x, y int) (HandleRef, bool) {
	handles := t.arrangement.Handles
	for i := len(handles) - 1; i >= 0; i-- {
		if handles[i].Rect.Contains(x, y) {
			return HandleRef{Engine: handles[i].Engine, Index: handles[i].Index}, true
		}
	}
	return HandleRef{}, false
}

// PointerDown starts a drag on the handle at cell (x, y), ending any drag in
// progress on another split. It reports whether a handle was grabbed.
func (t *Tree) PointerDown(x, y int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	ref, ok := t.handleAtLocked(x, y)
	if !ok {
		return false
	}
	if t.active != nil && t.active != ref.Engine {
		t.active.PointerLeave()
	}
	if err := ref.Engine.PointerDown(ref.Index); err != nil {
		t.logger.Warn().Err(err).Str("engine_id", ref.Engine.ID()).Msg("failed to start drag")
		return false
	}
	t.active = ref.Engine
	return true
}

// PointerMove forwards the pointer at cell (x, y) to the split being dragged.
// A cell maps to its far edge, so the dragged handle lands on the cell under
// the pointer. Leaving the dragged split's container ends the drag.
func (t *Tree) PointerMove(x, y int) MoveOutcome {
	t.mu.Lock()
	active := t.active
	if active == nil {
		t.mu.Unlock()
		return MoveIdle
	}
	rect := t.rects[active]
	if !rect.Contains(x, y) {
		t.active = nil
		t.mu.Unlock()
		active.PointerLeave()
		return MoveIdle
	}
	t.mu.Unlock()

	// Observers run inside the engine call and may read the tree back.
	outcome := active.PointerMove(float64(x+1), float64(y+1), rect.Bounds(active.Direction()))
	if outcome == MoveApplied {
		t.mu.Lock()
		t.arrangeLocked()
		t.mu.Unlock()
	}
	return outcome
}

// PointerUp ends the drag in progress.
func (t *Tree) PointerUp() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil {
		t.active.PointerUp()
		t.active = nil
	}
}

// PointerLeave ends the drag in progress when the pointer leaves the tree.
func (t *Tree) PointerLeave() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil {
		t.active.PointerLeave()
		t.active = nil
	}
}

// Dragging returns the handle being dragged, if any.
func (t *Tree) Dragging() (HandleRef, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.active == nil {
		return HandleRef{}, false
	}
	index, ok := t.active.Dragging()
	if !ok {
		return HandleRef{}, false
	}
	return HandleRef{Engine: t.active, Index: index}, true
}

// Nudge moves a handle by delta percent and refreshes the arrangement.
func (t *Tree) Nudge(ref HandleRef, delta float64) (bool, error) {
	moved, err := ref.Engine.Nudge(ref.Index, delta)
	if err != nil || !moved {
		return moved, err
	}

	t.mu.Lock()
	t.arrangeLocked()
	t.mu.Unlock()
	return true, nil
}

// Reset restores every split to its initial sizes.
func (t *Tree) Reset() {
	t.mu.Lock()
	t.active = nil
	t.mu.Unlock()

	for _, engine := range t.engines {
		engine.Reset()
	}

	t.mu.Lock()
	t.arrangeLocked()
	t.mu.Unlock()
}

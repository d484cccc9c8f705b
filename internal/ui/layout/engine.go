package layout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/domain/resize"
	"github.com/bnema/splitter/internal/logging"
)

// ErrHandleOutOfRange is returned when a pointer-down or nudge names a handle
// the split does not have.
var ErrHandleOutOfRange = errors.New("handle index out of range")

// MoveOutcome reports what a pointer move did to the split.
type MoveOutcome int

const (
	MoveApplied    MoveOutcome = iota // The handle moved to the pointer
	MoveIdle                          // No drag in progress
	MoveRejected                      // The pointer is outside the handle's window
	MoveDegenerate                    // The container has no usable extent yet
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveApplied:
		return "applied"
	case MoveIdle:
		return "idle"
	case MoveRejected:
		return "rejected"
	case MoveDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Option configures a SplitEngine.
type Option func(*SplitEngine)

// WithID names the engine. The ID travels in logs and change notifications.
func WithID(id string) Option {
	return func(e *SplitEngine) {
		e.id = id
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(observer port.SplitObserver) Option {
	return func(e *SplitEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// SplitEngine owns the pane sizes of one split container and the drag
// session driving them. Nested layouts use one engine per split.
type SplitEngine struct {
	id        string
	direction entity.LayoutDirection
	initial   entity.Percentages
	current   entity.Percentages
	session   DragSession
	observers []port.SplitObserver
	logger    zerolog.Logger

	mu sync.RWMutex
}

// NewSplitEngine validates the initial sizes and returns an idle engine.
// initial may be empty for an equal split. Invalid input yields an
// *entity.ConfigurationError.
func NewSplitEngine(
	ctx context.Context,
	paneCount int,
	direction entity.LayoutDirection,
	initial []float64,
	opts ...Option,
) (*SplitEngine, error) {
	percentages, err := entity.NewPercentages(paneCount, initial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize split: %w", err)
	}

	e := &SplitEngine{
		direction: direction,
		initial:   percentages,
		current:   percentages.Clone(),
	}
	for _, opt := range opts {
		opt(e)
	}

	ctx = logging.WithComponent(ctx, "split-engine")
	if e.id != "" {
		ctx = logging.WithEngineID(ctx, e.id)
	}
	e.logger = *logging.FromContext(ctx)
	e.logger.Debug().
		Int("panes", paneCount).
		Str("direction", direction.String()).
		Floats64("percentages", e.current).
		Msg("split engine initialized")

	return e, nil
}

// Subscribe adds an observer for subsequent changes.
func (e *SplitEngine) Subscribe(observer port.SplitObserver) {
	if observer == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.observers = append(e.observers, observer)
}

// PointerDown starts a drag session on handle index. A session already in
// progress is replaced. An unknown index is ignored and reported.
func (e *SplitEngine) PointerDown(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= e.current.HandleCount() {
		return fmt.Errorf("%w: %d (split has %d handles)", ErrHandleOutOfRange, index, e.current.HandleCount())
	}
	if prev, ok := e.session.Handle(); ok && prev != index {
		e.logger.Debug().Int("from", prev).Int("to", index).Msg("drag session replaced")
	}
	e.session.Begin(index)
	e.logger.Debug().Int("handle", index).Msg("drag session started")
	return nil
}

// PointerMove resolves the pointer against bounds and, if a drag is in
// progress, moves the dragged handle there. Only the coordinate on the
// engine's axis is used.
func (e *SplitEngine) PointerMove(x, y float64, bounds entity.ContainerBounds) MoveOutcome {
	e.mu.Lock()

	index, ok := e.session.Handle()
	if !ok {
		e.mu.Unlock()
		return MoveIdle
	}

	target, ok := resize.ToAxisPercentage(e.direction.Coordinate(x, y), bounds)
	if !ok {
		e.mu.Unlock()
		e.logger.Trace().Float64("origin", bounds.Origin).Float64("length", bounds.Length).Msg("skipping move on degenerate bounds")
		return MoveDegenerate
	}

	change, applied := e.moveLocked(index, entity.ReasonDrag, func(p entity.Percentages) bool {
		return dragTo(p, index, target)
	})
	e.mu.Unlock()

	if !applied {
		e.logger.Trace().Int("handle", index).Float64("target", target).Msg("drag outside handle window")
		return MoveRejected
	}
	e.notify(change)
	return MoveApplied
}

// PointerUp ends the drag session.
func (e *SplitEngine) PointerUp() {
	e.endSession("pointer up")
}

// PointerLeave ends the drag session when the pointer leaves the container.
func (e *SplitEngine) PointerLeave() {
	e.endSession("pointer left container")
}

func (e *SplitEngine) endSession(cause string) {
	e.mu.Lock()
	index, _ := e.session.Handle()
	ended := e.session.End()
	e.mu.Unlock()

	if ended {
		e.logger.Debug().Int("handle", index).Str("cause", cause).Msg("drag session ended")
	}
}

// Nudge moves handle index by delta percent, through the same window as a
// drag. It reports whether the handle moved; moves outside the window are
// ignored.
func (e *SplitEngine) Nudge(index int, delta float64) (bool, error) {
	e.mu.Lock()
	if index < 0 || index >= e.current.HandleCount() {
		e.mu.Unlock()
		return false, fmt.Errorf("%w: %d", ErrHandleOutOfRange, index)
	}
	change, applied := e.moveLocked(index, entity.ReasonNudge, func(p entity.Percentages) bool {
		return resize.Nudge(p, index, delta)
	})
	e.mu.Unlock()

	if applied {
		e.notify(change)
	}
	return applied, nil
}

// Reset restores the sizes the engine was created with and ends any drag.
func (e *SplitEngine) Reset() {
	e.mu.Lock()
	e.session.End()
	if e.current.Equal(e.initial) {
		e.mu.Unlock()
		return
	}
	change := entity.SplitChange{
		EngineID: e.id,
		Handle:   -1,
		Reason:   entity.ReasonReset,
		Previous: e.current,
		Current:  e.initial.Clone(),
	}
	e.current = change.Current.Clone()
	e.mu.Unlock()

	e.logger.Debug().Floats64("percentages", change.Current).Msg("split reset")
	e.notify(&change)
}

// dragTo moves handle index of p to target, taking the two-pane fast path
// when p has a single handle.
func dragTo(p entity.Percentages, index int, target float64) bool {
	if p.PaneCount() != entity.MinPaneCount {
		return resize.Apply(p, index, target)
	}
	// NaN and out-of-range targets come back as the current value.
	next := resize.SetSplit(p[0], target)
	if next != target {
		return false
	}
	p[0] = next
	return true
}

// moveLocked runs move on the current sizes of handle index. The returned
// change is nil when no observer is registered or the sizes did not move.
// Must be called with lock held.
func (e *SplitEngine) moveLocked(
	index int,
	reason entity.ChangeReason,
	move func(p entity.Percentages) bool,
) (*entity.SplitChange, bool) {
	var previous entity.Percentages
	if len(e.observers) > 0 {
		previous = e.current.Clone()
	}

	if !move(e.current) {
		return nil, false
	}

	if previous == nil || previous.Equal(e.current) {
		return nil, true
	}
	return &entity.SplitChange{
		EngineID: e.id,
		Handle:   index,
		Reason:   reason,
		Previous: previous,
		Current:  e.current.Clone(),
	}, true
}

func (e *SplitEngine) notify(change *entity.SplitChange) {
	if change == nil {
		return
	}

	e.mu.RLock()
	observers := make([]port.SplitObserver, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	for _, observer := range observers {
		observer.OnSplitChanged(*change)
	}
}

// Percentages returns a copy of the explicit pane sizes.
func (e *SplitEngine) Percentages() entity.Percentages {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.current.Clone()
}

// AllPercentages returns the size of every pane, the implicit last one included.
func (e *SplitEngine) AllPercentages() []float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.current.All()
}

// HandleOffset returns the position of handle index along the axis, in percent.
func (e *SplitEngine) HandleOffset(index int) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	offset, ok := e.current.HandleOffset(index)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrHandleOutOfRange, index)
	}
	return offset, nil
}

// Dragging returns the handle of the active drag session.
func (e *SplitEngine) Dragging() (index int, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.session.Handle()
}

func (e *SplitEngine) ID() string                        { return e.id }
func (e *SplitEngine) Direction() entity.LayoutDirection { return e.direction }
func (e *SplitEngine) PaneCount() int                    { return e.initial.PaneCount() }
func (e *SplitEngine) HandleCount() int                  { return e.initial.HandleCount() }

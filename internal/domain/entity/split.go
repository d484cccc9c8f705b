// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"math"
	"strings"
)

// PercentTotal is the size of a container expressed in percent.
const PercentTotal = 100.0

// SumTolerance bounds how far user-supplied percentages may stray from
// PercentTotal before they are rejected at initialization.
const SumTolerance = 1e-6

// MinPaneCount is the smallest number of panes a split can hold.
const MinPaneCount = 2

// LayoutDirection indicates the axis along which a split lays out its panes.
type LayoutDirection int

const (
	DirectionRow    LayoutDirection = iota // Panes side by side, sizes along the x axis
	DirectionColumn                        // Panes stacked, sizes along the y axis
)

func (d LayoutDirection) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return fmt.Sprintf("LayoutDirection(%d)", int(d))
	}
}

// Coordinate picks the component of a pointer position that lies on this axis.
func (d LayoutDirection) Coordinate(x, y float64) float64 {
	if d == DirectionColumn {
		return y
	}
	return x
}

// ParseLayoutDirection converts "row" / "column" (case-insensitive) into a LayoutDirection.
// "horizontal" and "vertical" are accepted as aliases.
func ParseLayoutDirection(s string) (LayoutDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "horizontal":
		return DirectionRow, nil
	case "column", "vertical":
		return DirectionColumn, nil
	default:
		return DirectionRow, fmt.Errorf("unknown layout direction %q (want row or column)", s)
	}
}

// Percentages holds the sizes of every pane except the last one.
// The last pane is implicit and always equals PercentTotal minus the sum.
type Percentages []float64

// EqualSplit returns the default vector for paneCount panes: each explicit pane
// gets PercentTotal/paneCount.
func EqualSplit(paneCount int) Percentages {
	if paneCount < MinPaneCount {
		return nil
	}
	size := PercentTotal / float64(paneCount)
	p := make(Percentages, paneCount-1)
	for i := range p {
		p[i] = size
	}
	return p
}

// NewPercentages validates initial sizes for paneCount panes.
// A nil or empty initial slice yields an equal split. Either the paneCount-1
// explicit values or all paneCount values may be supplied; in the latter case
// they must add up to PercentTotal and the last one is dropped.
func NewPercentages(paneCount int, initial []float64) (Percentages, error) {
	if paneCount < MinPaneCount {
		return nil, newConfigurationError(ErrTooFewPanes, "got %d panes, need at least %d", paneCount, MinPaneCount)
	}
	if len(initial) == 0 {
		return EqualSplit(paneCount), nil
	}

	switch len(initial) {
	case paneCount - 1:
		p := Percentages(initial).Clone()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil
	case paneCount:
		full := Percentages(initial)
		if err := checkElements(full); err != nil {
			return nil, err
		}
		if sum := full.Sum(); math.Abs(sum-PercentTotal) > SumTolerance {
			return nil, newConfigurationError(ErrPercentageSum, "sizes of %d panes add up to %g, want %g", paneCount, sum, PercentTotal)
		}
		return full[:paneCount-1].Clone(), nil
	default:
		return nil, newConfigurationError(ErrPercentageCount, "got %d percentages for %d panes, want %d or %d",
			len(initial), paneCount, paneCount-1, paneCount)
	}
}

// Validate checks the sum and non-negativity invariants.
func (p Percentages) Validate() error {
	if err := checkElements(p); err != nil {
		return err
	}
	if sum := p.Sum(); sum > PercentTotal+SumTolerance {
		return newConfigurationError(ErrPercentageSum, "explicit panes add up to %g, exceeding %g", sum, PercentTotal)
	}
	return nil
}

func checkElements(p Percentages) error {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newConfigurationError(ErrPercentageRange, "pane %d size is not a finite number", i)
		}
		if v < 0 || v > PercentTotal {
			return newConfigurationError(ErrPercentageRange, "pane %d size %g is outside [0, %g]", i, v, PercentTotal)
		}
	}
	return nil
}

// PaneCount returns the number of panes including the implicit last one.
func (p Percentages) PaneCount() int {
	return len(p) + 1
}

// HandleCount returns the number of draggable handles.
func (p Percentages) HandleCount() int {
	return len(p)
}

// Sum adds up the explicit panes.
func (p Percentages) Sum() float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}

// Implicit returns the size of the last pane.
func (p Percentages) Implicit() float64 {
	return PercentTotal - p.Sum()
}

// All returns the sizes of every pane, the implicit one included.
func (p Percentages) All() []float64 {
	all := make([]float64, len(p)+1)
	copy(all, p)
	all[len(p)] = p.Implicit()
	return all
}

// HandleOffset returns the position of handle index along the axis: the sum
// of the panes before it. ok is false when the handle does not exist.
func (p Percentages) HandleOffset(index int) (offset float64, ok bool) {
	if index < 0 || index >= len(p) {
		return 0, false
	}
	for _, v := range p[:index+1] {
		offset += v
	}
	return offset, true
}

// Clone returns an independent copy.
func (p Percentages) Clone() Percentages {
	if p == nil {
		return nil
	}
	c := make(Percentages, len(p))
	copy(c, p)
	return c
}

// Equal reports whether both vectors hold exactly the same values.
func (p Percentages) Equal(other Percentages) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ChangeReason tells observers what caused a split change.
type ChangeReason int

const (
	ReasonDrag  ChangeReason = iota // Pointer drag on a handle
	ReasonNudge                     // Keyboard step on a handle
	ReasonReset                     // Restored to the initial sizes
)

func (r ChangeReason) String() string {
	switch r {
	case ReasonDrag:
		return "drag"
	case ReasonNudge:
		return "nudge"
	case ReasonReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SplitChange describes one applied update of a split's percentages.
// Handle is -1 when the change is not tied to a single handle (reset).
type SplitChange struct {
	EngineID string
	Handle   int
	Reason   ChangeReason
	Previous Percentages
	Current  Percentages
}

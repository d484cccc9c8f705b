// Package resize implements the redistribution law that turns a handle drag
// into new pane sizes. Functions here are pure and allocation-free unless
// documented otherwise.
package resize

import (
	"math"

	"github.com/bnema/splitter/internal/domain/entity"
)

// Window returns the interval [lo, hi] that handle index may occupy: it can
// not cross the previous handle (or the container start) nor the next handle
// (or the container end). ok is false when the handle does not exist.
func Window(current entity.Percentages, index int) (lo, hi float64, ok bool) {
	if index < 0 || index >= len(current) {
		return 0, 0, false
	}
	for _, v := range current[:index] {
		lo += v
	}
	next := index + 1
	if next == len(current) {
		return lo, entity.PercentTotal, true
	}
	return lo, lo + current[index] + current[next], true
}

// Apply moves handle index to target in place. Only the two panes flanking
// the handle change: the pane before it takes target minus the previous
// handle's position, and the pane after it takes whatever is left up to the
// next handle. A target outside Window is rejected and p is left untouched.
func Apply(p entity.Percentages, index int, target float64) bool {
	lo, hi, ok := Window(p, index)
	if !ok {
		return false
	}
	// NaN fails both comparisons and is rejected with the rest.
	if !(target >= lo && target <= hi) {
		return false
	}

	p[index] = target - lo
	if next := index + 1; next < len(p) {
		p[next] = hi - target
	}
	return true
}

// Redistribute returns the vector obtained by dragging handle index to
// target. When the drag is rejected the result equals current. The input is
// never modified; the result is a fresh slice.
func Redistribute(current entity.Percentages, index int, target float64) entity.Percentages {
	next := current.Clone()
	Apply(next, index, target)
	return next
}

// Nudge moves handle index by delta percent from its current position.
func Nudge(p entity.Percentages, index int, delta float64) bool {
	offset, ok := p.HandleOffset(index)
	if !ok {
		return false
	}
	return Apply(p, index, offset+delta)
}

// SetSplit is the two-pane form of Redistribute: the single handle may sit
// anywhere in [0, PercentTotal]. Targets outside that range are rejected and
// current is returned.
func SetSplit(current, target float64) float64 {
	if !(target >= 0 && target <= entity.PercentTotal) {
		return current
	}
	return target
}

// ToAxisPercentage projects a pointer coordinate onto the container axis.
// ok is false for degenerate bounds, in which case the caller must skip the
// update. Coordinates outside the container map outside [0, 100] and are left
// for Apply to reject.
func ToAxisPercentage(coord float64, bounds entity.ContainerBounds) (float64, bool) {
	if bounds.Degenerate() || math.IsNaN(coord) || math.IsInf(coord, 0) {
		return 0, false
	}
	return (coord - bounds.Origin) / bounds.Length * entity.PercentTotal, true
}

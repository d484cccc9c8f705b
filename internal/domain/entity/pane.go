package entity

// PaneSpec describes a single pane of a split layout.
// It is either:
//   - Leaf: shows content identified by Title
//   - Nested: holds another split that fills the pane
type PaneSpec struct {
	Title string
	Split *SplitSpec // Non-nil for nested splits
}

// IsLeaf returns true if the pane does not hold a nested split.
func (p PaneSpec) IsLeaf() bool {
	return p.Split == nil
}

// SplitSpec describes a split container and its panes.
// Percentages follows the Percentages convention (the last pane is implicit);
// an empty slice means an equal split.
type SplitSpec struct {
	ID          string
	Direction   LayoutDirection
	Percentages []float64
	Panes       []PaneSpec
}

// Walk traverses the spec depth-first calling fn for each split. Returns early if fn returns false.
func (s *SplitSpec) Walk(fn func(split *SplitSpec, depth int) bool) {
	s.walk(fn, 0)
}

func (s *SplitSpec) walk(fn func(*SplitSpec, int) bool, depth int) bool {
	if s == nil {
		return true
	}
	if !fn(s, depth) {
		return false
	}
	for _, pane := range s.Panes {
		if pane.Split != nil && !pane.Split.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// SplitCount returns the number of splits in the spec, this one included.
func (s *SplitSpec) SplitCount() int {
	count := 0
	s.Walk(func(*SplitSpec, int) bool {
		count++
		return true
	})
	return count
}

// LeafCount returns the number of leaf panes in the spec.
func (s *SplitSpec) LeafCount() int {
	count := 0
	s.Walk(func(split *SplitSpec, _ int) bool {
		for _, pane := range split.Panes {
			if pane.IsLeaf() {
				count++
			}
		}
		return true
	})
	return count
}

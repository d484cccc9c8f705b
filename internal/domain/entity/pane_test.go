package entity

import "testing"

func nestedSpec() *SplitSpec {
	return &SplitSpec{
		ID:        "root",
		Direction: DirectionRow,
		Panes: []PaneSpec{
			{Title: "left"},
			{Split: &SplitSpec{
				ID:        "middle",
				Direction: DirectionColumn,
				Panes: []PaneSpec{
					{Title: "top"},
					{Split: &SplitSpec{
						ID:    "inner",
						Panes: []PaneSpec{{Title: "a"}, {Title: "b"}},
					}},
				},
			}},
			{Title: "right"},
		},
	}
}

func TestSplitSpec_Counts(t *testing.T) {
	tests := []struct {
		name       string
		spec       *SplitSpec
		wantSplits int
		wantLeaves int
	}{
		{
			name: "flat split",
			spec: &SplitSpec{
				ID:    "root",
				Panes: []PaneSpec{{Title: "one"}, {Title: "two"}},
			},
			wantSplits: 1,
			wantLeaves: 2,
		},
		{
			name:       "nested splits",
			spec:       nestedSpec(),
			wantSplits: 3,
			wantLeaves: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.SplitCount(); got != tt.wantSplits {
				t.Errorf("SplitCount() = %d, want %d", got, tt.wantSplits)
			}
			if got := tt.spec.LeafCount(); got != tt.wantLeaves {
				t.Errorf("LeafCount() = %d, want %d", got, tt.wantLeaves)
			}
		})
	}
}

func TestSplitSpec_WalkDepthAndEarlyStop(t *testing.T) {
	spec := nestedSpec()

	depths := map[string]int{}
	spec.Walk(func(split *SplitSpec, depth int) bool {
		depths[split.ID] = depth
		return true
	})
	if depths["root"] != 0 || depths["middle"] != 1 || depths["inner"] != 2 {
		t.Fatalf("unexpected depths: %v", depths)
	}

	visited := 0
	spec.Walk(func(split *SplitSpec, _ int) bool {
		visited++
		return split.ID != "middle"
	})
	if visited != 2 {
		t.Fatalf("visited %d splits, want 2", visited)
	}
}

package config

import (
	"fmt"

	"github.com/bnema/splitter/internal/domain/entity"
)

// SplitSpec converts the layout section into the domain description of a
// split tree. Pane sizes are validated later, when engines are built.
func (l *LayoutConfig) SplitSpec() (*entity.SplitSpec, error) {
	direction, err := entity.ParseLayoutDirection(l.Direction)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.ID, err)
	}

	spec := &entity.SplitSpec{
		ID:          l.ID,
		Direction:   direction,
		Percentages: append([]float64(nil), l.Percentages...),
		Panes:       make([]entity.PaneSpec, 0, len(l.Panes)),
	}
	for _, pane := range l.Panes {
		p := entity.PaneSpec{Title: pane.Title}
		if pane.Split != nil {
			p.Split, err = pane.Split.SplitSpec()
			if err != nil {
				return nil, err
			}
		}
		spec.Panes = append(spec.Panes, p)
	}
	return spec, nil
}

// FlatLayout builds a single split of paneCount panes titled by position.
func FlatLayout(paneCount int, direction string, percentages []float64) LayoutConfig {
	layout := LayoutConfig{
		Direction:   direction,
		Percentages: percentages,
		Panes:       make([]PaneConfig, paneCount),
	}
	for i := range layout.Panes {
		layout.Panes[i].Title = fmt.Sprintf("pane %d", i+1)
	}
	return layout
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Layout = c.Layout.clone()
	return &clone
}

func (l LayoutConfig) clone() LayoutConfig {
	if l.Percentages != nil {
		l.Percentages = append([]float64{}, l.Percentages...)
	}
	if l.Panes != nil {
		panes := make([]PaneConfig, len(l.Panes))
		for i, pane := range l.Panes {
			if pane.Split != nil {
				split := pane.Split.clone()
				pane.Split = &split
			}
			panes[i] = pane
		}
		l.Panes = panes
	}
	return l
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
)

func TestDemoSpec_FromConfig(t *testing.T) {
	spec, err := demoSpec(config.DefaultConfig(), layoutFlags{})

	require.NoError(t, err)
	assert.Equal(t, entity.DirectionRow, spec.Direction)
	assert.Len(t, spec.Panes, 3)
}

func TestDemoSpec_FromFlags(t *testing.T) {
	spec, err := demoSpec(config.DefaultConfig(), layoutFlags{panes: 4, direction: "column", percentages: []float64{10, 20, 30}})

	require.NoError(t, err)
	assert.Equal(t, entity.DirectionColumn, spec.Direction)
	assert.Len(t, spec.Panes, 4)
	assert.Equal(t, []float64{10, 20, 30}, spec.Percentages)
}

func TestDemoSpec_FlagsNeedPanes(t *testing.T) {
	_, err := demoSpec(config.DefaultConfig(), layoutFlags{direction: "column"})

	assert.Error(t, err)
}

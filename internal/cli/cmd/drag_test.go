package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

func threePaneDrag() dragOptions {
	return dragOptions{
		layoutFlags: layoutFlags{panes: 3, percentages: []float64{33.33, 33.33}},
		handle:      0,
		origin:      100,
		length:      400,
		to:          []float64{140, 500, 260},
		decimals:    2,
	}
}

func TestReplayDrag(t *testing.T) {
	// Act
	rows, err := replayDrag(context.Background(), threePaneDrag())

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "start", rows[0].Outcome)
	assert.InDelta(t, 233.32, rows[0].Coordinate, 1e-6)
	assert.Equal(t, "33.33% 33.33% 33.34%", rows[0].Sizes)

	assert.Equal(t, "applied", rows[1].Outcome)
	assert.Equal(t, "10.00% 56.66% 33.34%", rows[1].Sizes)

	assert.Equal(t, "rejected", rows[2].Outcome)
	assert.Equal(t, rows[1].Sizes, rows[2].Sizes)

	assert.Equal(t, 3, rows[3].Step)
	assert.Equal(t, "applied", rows[3].Outcome)
	assert.Equal(t, "40.00% 26.66% 33.34%", rows[3].Sizes)
}

func TestReplayDrag_Column(t *testing.T) {
	opts := dragOptions{
		layoutFlags: layoutFlags{panes: 2, direction: "column"},
		length:      120,
		to:          []float64{30},
		decimals:    1,
	}

	rows, err := replayDrag(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, "25.0% 75.0%", rows[1].Sizes)
}

func TestReplayDrag_DegenerateContainer(t *testing.T) {
	opts := threePaneDrag()
	opts.length = 0

	rows, err := replayDrag(context.Background(), opts)

	require.NoError(t, err)
	for _, row := range rows[1:] {
		assert.Equal(t, "degenerate", row.Outcome)
	}
}

func TestReplayDrag_Errors(t *testing.T) {
	t.Run("direction", func(t *testing.T) {
		opts := threePaneDrag()
		opts.direction = "diagonal"
		_, err := replayDrag(context.Background(), opts)
		assert.Error(t, err)
	})

	t.Run("handle", func(t *testing.T) {
		opts := threePaneDrag()
		opts.handle = 2
		_, err := replayDrag(context.Background(), opts)
		assert.ErrorIs(t, err, layout.ErrHandleOutOfRange)
	})

	t.Run("panes", func(t *testing.T) {
		opts := threePaneDrag()
		opts.panes = 1
		opts.percentages = nil
		_, err := replayDrag(context.Background(), opts)
		assert.ErrorIs(t, err, entity.ErrTooFewPanes)
	})
}

func TestRunDrag_PrintsTable(t *testing.T) {
	var buf bytes.Buffer

	err := runDrag(context.Background(), &buf, styles.NewTheme(nil), threePaneDrag())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "3 panes (row), handle 0")
	assert.Contains(t, out, "Outcome")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "40.00% 26.66% 33.34%")
	assert.Contains(t, out, "233.32")
}

func TestReplayDrag_LogsAppliedSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := logging.WithContext(context.Background(), logger)

	_, err := replayDrag(ctx, threePaneDrag())

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "drag step applied"), "the rejected step is not logged")
	assert.Contains(t, buf.String(), `"handle":0`)
	assert.Contains(t, buf.String(), `"component":"drag"`)
}

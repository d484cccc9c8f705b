package layout

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/splitter/internal/domain/entity"
)

// FormatTracks renders pane sizes as a space separated list of percentages,
// e.g. "33.33% 33.33% 33.34%".
func FormatTracks(sizes []float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	var b strings.Builder
	for i, v := range sizes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(math.Max(v, 0), 'f', decimals, 64))
		b.WriteByte('%')
	}
	return b.String()
}

// Tracks converts pane sizes into whole cell counts that add up to cells.
// Cells left over after flooring go to the panes with the largest fractional
// part, earlier panes first on ties.
func Tracks(sizes []float64, cells int) []int {
	tracks := make([]int, len(sizes))
	if len(sizes) == 0 || cells <= 0 {
		return tracks
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, len(sizes))
	used := 0
	for i, v := range sizes {
		exact := math.Max(v, 0) / entity.PercentTotal * float64(cells)
		whole := math.Floor(exact)
		tracks[i] = int(whole)
		used += tracks[i]
		rems[i] = remainder{index: i, frac: exact - whole}
	}

	left := cells - used
	if left <= 0 {
		// Sizes adding up to slightly more than 100 can overshoot by a cell.
		for i := len(tracks) - 1; i >= 0 && left < 0; i-- {
			take := min(tracks[i], -left)
			tracks[i] -= take
			left += take
		}
		return tracks
	}

	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for i := 0; left > 0; i = (i + 1) % len(rems) {
		tracks[rems[i].index]++
		left--
	}
	return tracks
}

// HandleCell returns the cell, relative to the container start, that handle
// index occupies: the last cell of the pane before it.
// It returns -1 when index is not a handle of the given tracks.
func HandleCell(tracks []int, index int) int {
	if index < 0 || index >= len(tracks)-1 {
		return -1
	}
	end := 0
	for _, t := range tracks[:index+1] {
		end += t
	}
	return max(end-1, 0)
}

// FormatTracks renders the engine's pane sizes, see the package function.
func (e *SplitEngine) FormatTracks(decimals int) string {
	return FormatTracks(e.AllPercentages(), decimals)
}

// Tracks sizes the engine's panes for a container of cells.
func (e *SplitEngine) Tracks(cells int) []int {
	return Tracks(e.AllPercentages(), cells)
}

// Package layout computes the grid geometry for the entry pane.
package layout

import "math"

const (
	// CellWidth is the fixed horizontal budget of one grid cell,
	// including the selection marker and padding.
	CellWidth = 22

	// NameWidth is the number of columns available for the entry name
	// inside a cell before truncation applies.
	NameWidth = 20
)

// Grid describes the geometry of the entry pane for one frame.
type Grid struct {
	Cols        int
	VisibleRows int
}

// Rows returns the total number of rows needed to place n entries.
func (g Grid) Rows(n int) int {
	if g.Cols < 1 {
		return 0
	}
	return (n + g.Cols - 1) / g.Cols
}

// Compute picks the column count for n entries in a viewport of
// width x height character cells. List mode is always a single column.
//
// Grid mode aims for a roughly square arrangement: among the column
// counts whose required row count fits the viewport, it picks the one
// minimizing |cols - rowsNeeded|, breaking ties toward fewer columns.
// When no column count fits (too many entries for the viewport), it
// falls back to ceil(sqrt(n)) clamped to the viewport width and lets
// vertical scrolling absorb the rest.
func Compute(n, width, height int, list bool) Grid {
	if height < 1 {
		height = 1
	}
	if list {
		return Grid{Cols: 1, VisibleRows: height}
	}

	maxCols := width / CellWidth
	if maxCols < 1 {
		maxCols = 1
	}
	if n < 1 {
		return Grid{Cols: 1, VisibleRows: height}
	}

	ideal := int(math.Ceil(math.Sqrt(float64(n))))
	if ideal < 1 {
		ideal = 1
	}
	if ideal > maxCols {
		ideal = maxCols
	}

	bestCols := 0
	bestScore := math.MaxInt
	for cols := 1; cols <= maxCols; cols++ {
		rowsNeeded := (n + cols - 1) / cols
		if rowsNeeded > height {
			continue
		}
		score := cols - rowsNeeded
		if score < 0 {
			score = -score
		}
		if score < bestScore {
			bestScore = score
			bestCols = cols
		}
	}

	if bestCols == 0 {
		bestCols = ideal
	}
	return Grid{Cols: bestCols, VisibleRows: height}
}

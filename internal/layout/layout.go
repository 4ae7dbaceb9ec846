// Package layout derives tile geometry from the viewport height and the
// selected column count.
package layout

import "github.com/five82/marquee/internal/content"

const (
	// Spacing is the gap between tiles and around the wall, in pixels.
	Spacing = 16

	MinColumns = 1
	MaxColumns = 4

	// ScrollFactor converts page scroll into wall offset.
	ScrollFactor = 0.5
)

// Table holds the per-column-count presentation constants.
type Table struct {
	VisibleRows map[int]int
	FontScale   map[int]float64
}

var defaultVisibleRows = map[int]int{1: 1, 2: 1, 3: 2, 4: 2}

// ClassifiedTable is tuned for the short-content, classified wall.
func ClassifiedTable() Table {
	return Table{
		VisibleRows: copyRows(defaultVisibleRows),
		FontScale:   map[int]float64{1: 1, 2: 0.6, 3: 0.42, 4: 0.4},
	}
}

// CyclingTable is tuned for the long-content, colour-cycling wall.
func CyclingTable() Table {
	return Table{
		VisibleRows: copyRows(defaultVisibleRows),
		FontScale:   map[int]float64{1: 1, 2: 1, 3: 0.8, 4: 0.68},
	}
}

// Rows returns the visible row count for numColumns, defaulting to 1.
func (t Table) Rows(numColumns int) int {
	if rows, ok := t.VisibleRows[ClampColumns(numColumns)]; ok && rows > 0 {
		return rows
	}
	return 1
}

// Scale returns the font scale for numColumns, defaulting to 1.
func (t Table) Scale(numColumns int) float64 {
	if scale, ok := t.FontScale[ClampColumns(numColumns)]; ok && scale > 0 {
		return scale
	}
	return 1
}

// State is the geometry of the wall for one viewport and column count.
type State struct {
	ViewportHeight int
	NumColumns     int
	VisibleRows    int
	TileHeight     float64
	FontScale      float64
	MaxOffset      float64
}

// Calculate derives the wall geometry. Negative results are clamped to zero
// and a viewport too short for any tile has no scroll range.
func Calculate(viewportHeight, numColumns int, table Table) State {
	numColumns = ClampColumns(numColumns)
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	rows := table.Rows(numColumns)

	s := State{
		ViewportHeight: viewportHeight,
		NumColumns:     numColumns,
		VisibleRows:    rows,
		FontScale:      table.Scale(numColumns),
	}

	tile := float64(viewportHeight-2*Spacing-Spacing*(rows-1)) / float64(rows)
	if tile < 0 {
		tile = 0
	}
	s.TileHeight = tile

	// Without room for a tile there is nothing to scroll through.
	if tile == 0 {
		return s
	}
	maxOffset := float64(content.Feed-rows) * (tile + Spacing)
	if maxOffset < 0 {
		maxOffset = 0
	}
	s.MaxOffset = maxOffset
	return s
}

// PageHeight is the scrollable page height needed to reach MaxOffset
// through manual scroll input.
func (s State) PageHeight() float64 {
	return s.MaxOffset/ScrollFactor + float64(s.ViewportHeight)
}

// MaxScroll is the largest page scroll position.
func (s State) MaxScroll() float64 {
	return s.MaxOffset / ScrollFactor
}

// ClampColumns limits n to the supported column range.
func ClampColumns(n int) int {
	switch {
	case n < MinColumns:
		return MinColumns
	case n > MaxColumns:
		return MaxColumns
	default:
		return n
	}
}

func copyRows(in map[int]int) map[int]int {
	out := make(map[int]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

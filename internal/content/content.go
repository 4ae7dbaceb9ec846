// Package content turns review pools into the fixed-length tile sequences
// each column scrolls through.
package content

import (
	"strings"
	"unicode"

	"github.com/five82/marquee/internal/palette"
	"github.com/five82/marquee/internal/review"
)

const (
	// Feed is the number of tiles in every column.
	Feed = 40

	// ColumnStride offsets each column's starting point in the pool. When
	// the pool length divides the stride, neighbouring columns start on the
	// same review; that repetition is expected.
	ColumnStride = 10

	// Ellipsis marks truncated text.
	Ellipsis = "…"

	DefaultAuthorLimit   = 30
	ShortContentLimit    = 150
	ExtendedContentLimit = 400
)

// DisplayItem is one rendered tile.
type DisplayItem struct {
	Author             string
	Content            string
	Color              palette.Color
	Category           review.Category
	SourceIndex        int
	LightBackground    bool
	HighContrastAuthor bool
}

// Distributor materialises column content from a review pool.
type Distributor struct {
	Policy       palette.Policy
	AuthorLimit  int
	ContentLimit int

	// FlaggedColumn routes the last column to the flagged pool when there is
	// more than one column and flagged reviews exist.
	FlaggedColumn bool
}

// ColumnContent returns exactly Feed items cycling through pool, or nil for
// an empty pool. The result depends only on its arguments.
func (d Distributor) ColumnContent(column int, pool []review.Review) []DisplayItem {
	if len(pool) == 0 {
		return nil
	}

	policy := d.Policy
	if policy == nil {
		policy = palette.DefaultPositionFirst()
	}
	authorLimit := d.AuthorLimit
	if authorLimit <= 0 {
		authorLimit = DefaultAuthorLimit
	}
	contentLimit := d.ContentLimit
	if contentLimit <= 0 {
		contentLimit = ShortContentLimit
	}

	items := make([]DisplayItem, Feed)
	for i := range items {
		src := SourceIndex(i, column, len(pool))
		r := pool[src]
		color := policy.ColorFor(i, r.Category, column)
		items[i] = DisplayItem{
			Author:             Truncate(r.Author, authorLimit),
			Content:            Truncate(r.Content, contentLimit),
			Color:              color,
			Category:           r.Category,
			SourceIndex:        src,
			LightBackground:    !palette.IsDark(color),
			HighContrastAuthor: palette.NeedsBlackText(color),
		}
	}
	return items
}

// SelectPool picks the pool a column draws from.
func (d Distributor) SelectPool(column, numColumns int, ds review.Dataset) []review.Review {
	if d.FlaggedColumn && numColumns >= 2 && column == numColumns-1 && len(ds.Flagged) > 0 {
		return ds.Flagged
	}
	return ds.Normal
}

// Columns materialises every column of the wall.
func (d Distributor) Columns(numColumns int, ds review.Dataset) [][]DisplayItem {
	cols := make([][]DisplayItem, numColumns)
	for c := range cols {
		cols[c] = d.ColumnContent(c, d.SelectPool(c, numColumns, ds))
	}
	return cols
}

// SourceIndex maps position i of column into a pool of length n.
func SourceIndex(i, column, n int) int {
	if n <= 0 {
		return 0
	}
	idx := (i + column*ColumnStride) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Truncate hard-cuts s to limit runes, appending Ellipsis when cut.
func Truncate(s string, limit int) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + Ellipsis
}

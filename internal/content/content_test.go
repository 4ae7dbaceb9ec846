package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/palette"
	"github.com/five82/marquee/internal/review"
)

func pool(n int) []review.Review {
	out := make([]review.Review, n)
	for i := range out {
		out[i] = review.Review{
			Author:  fmt.Sprintf("author-%d", i),
			Content: fmt.Sprintf("review body number %d", i),
		}
	}
	return out
}

func sourceIndexes(items []DisplayItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.SourceIndex
	}
	return out
}

func TestColumnContent_LengthIsFixed(t *testing.T) {
	d := Distributor{}
	for _, n := range []int{1, 3, 5, 39, 40, 41, 200} {
		items := d.ColumnContent(2, pool(n))
		assert.Len(t, items, Feed, "pool size %d", n)
	}
}

func TestColumnContent_EmptyPool(t *testing.T) {
	assert.Empty(t, Distributor{}.ColumnContent(0, nil))
}

func TestColumnContent_Deterministic(t *testing.T) {
	d := Distributor{Policy: palette.DefaultPositionFirst()}
	p := pool(17)

	first := d.ColumnContent(3, p)
	second := d.ColumnContent(3, p)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ColumnContent not idempotent (-first +second):\n%s", diff)
	}
}

func TestColumnContent_CyclesThroughPool(t *testing.T) {
	d := Distributor{}
	p := pool(5)

	col0 := sourceIndexes(d.ColumnContent(0, p))
	want := make([]int, Feed)
	for i := range want {
		want[i] = i % 5
	}
	if diff := cmp.Diff(want, col0); diff != "" {
		t.Fatalf("column 0 indexes (-want +got):\n%s", diff)
	}

	// 10 mod 5 == 0: column 1 starts where column 0 does.
	col1 := sourceIndexes(d.ColumnContent(1, p))
	if diff := cmp.Diff(col0, col1); diff != "" {
		t.Fatalf("column 1 should repeat column 0 when the pool divides the stride:\n%s", diff)
	}
}

func TestColumnContent_StrideOffsetsColumns(t *testing.T) {
	d := Distributor{}
	p := pool(7)

	col1 := d.ColumnContent(1, p)
	assert.Equal(t, 3, col1[0].SourceIndex) // 10 mod 7
	assert.Equal(t, 4, col1[1].SourceIndex)
	assert.Equal(t, 0, col1[4].SourceIndex)
}

func TestColumnContent_ColorsAndFlags(t *testing.T) {
	d := Distributor{Policy: palette.DefaultCategoryFirst()}
	p := []review.Review{
		{Author: "a", Content: "crash after crash after crash", Category: review.Flagged},
		{Author: "b", Content: "works as advertised", Category: review.Normal},
	}

	items := d.ColumnContent(0, p)
	require.Len(t, items, Feed)

	assert.Equal(t, palette.Problem, items[0].Color)
	assert.True(t, items[0].HighContrastAuthor)
	assert.False(t, items[0].LightBackground)

	assert.Equal(t, palette.Navy, items[1].Color)
	assert.False(t, items[1].LightBackground)
	assert.False(t, items[1].HighContrastAuthor)

	single := d.ColumnContent(0, p[1:])
	assert.Equal(t, palette.Sun, single[0].Color)
	assert.True(t, single[0].LightBackground)
	assert.Equal(t, palette.Navy, single[1].Color)
}

func TestColumnContent_Truncates(t *testing.T) {
	d := Distributor{AuthorLimit: 5, ContentLimit: 12}
	p := []review.Review{{Author: "Bartholomew", Content: "this is long enough to cut"}}

	items := d.ColumnContent(0, p)
	assert.Equal(t, "Barth…", items[0].Author)
	assert.Equal(t, "this is long…", items[0].Content)
}

func TestSelectPool(t *testing.T) {
	ds := review.NewDataset([]review.Review{
		{Author: "a", Content: "works as advertised"},
		{Author: "b", Content: "crashes all the time"},
	}, true)

	d := Distributor{FlaggedColumn: true}
	assert.Equal(t, ds.Normal, d.SelectPool(0, 1, ds), "single column never uses flagged")
	assert.Equal(t, ds.Normal, d.SelectPool(0, 3, ds))
	assert.Equal(t, ds.Flagged, d.SelectPool(2, 3, ds))

	d.FlaggedColumn = false
	assert.Equal(t, ds.Normal, d.SelectPool(2, 3, ds))

	noFlags := review.NewDataset(ds.Normal, true)
	d.FlaggedColumn = true
	assert.Equal(t, noFlags.Normal, d.SelectPool(1, 2, noFlags))
}

func TestColumns(t *testing.T) {
	ds := review.NewDataset(pool(3), false)
	cols := Distributor{}.Columns(4, ds)
	require.Len(t, cols, 4)
	for _, c := range cols {
		assert.Len(t, c, Feed)
	}

	assert.Len(t, Distributor{}.Columns(2, review.Dataset{}), 2)
	assert.Empty(t, Distributor{}.Columns(2, review.Dataset{})[0])
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello…"},
		{"trailing space trimmed first", "hello     ", 5, "hello"},
		{"cut lands on space", "hello world", 6, "hello…"},
		{"runes", "ééééé", 3, "ééé…"},
		{"no limit", "keep  ", 0, "keep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, Ellipsis), " "))
		})
	}
}

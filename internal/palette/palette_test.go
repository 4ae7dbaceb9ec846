package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/marquee/internal/review"
)

func TestIsDark(t *testing.T) {
	tests := []struct {
		color Color
		want  bool
	}{
		{"#000000", true},
		{"#FFFFFF", false},
		{"#ffffff", false},
		{Navy, true},
		{Sun, false},
		{Problem, true},
		{Ink, true},
		{"not-a-color", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			assert.Equal(t, tt.want, IsDark(tt.color))
		})
	}
}

func TestLuminanceMatchesChannelFormula(t *testing.T) {
	// 0.299*238 + 0.587*66 + 0.114*102 on the 0-255 scale.
	want := (0.299*238 + 0.587*66 + 0.114*102) / 255

	got, ok := Luminance(Problem)
	assert.True(t, ok)
	assert.InDelta(t, want, got, 1e-9)
}

func TestNeedsBlackText(t *testing.T) {
	assert.True(t, NeedsBlackText(Problem))
	assert.True(t, NeedsBlackText("#4d96ff"))
	assert.False(t, NeedsBlackText(Navy))
	// Whitelisted despite luminance calling it dark.
	assert.True(t, IsDark(Problem))
}

func TestCategoryFirst(t *testing.T) {
	p := DefaultCategoryFirst()

	assert.Equal(t, Problem, p.ColorFor(0, review.Flagged, 2))
	assert.Equal(t, Problem, p.ColorFor(7, review.Flagged, 0))
	assert.Equal(t, Sun, p.ColorFor(0, review.Normal, 3))
	assert.Equal(t, Navy, p.ColorFor(1, review.Normal, 3))
	assert.Equal(t, Sun, p.ColorFor(2, review.Normal, 0))
}

func TestPositionFirst(t *testing.T) {
	p := DefaultPositionFirst()

	assert.Equal(t, Coral, p.ColorFor(0, review.Normal, 0))
	assert.Equal(t, Azure, p.ColorFor(0, review.Flagged, 1))
	assert.Equal(t, Mustard, p.ColorFor(0, review.Normal, 2))
	assert.Equal(t, Coral, p.ColorFor(2, review.Normal, 1))
}

func TestPickEmptyPalette(t *testing.T) {
	assert.Equal(t, Ink, CategoryFirst{}.ColorFor(3, review.Normal, 0))
}

// Package palette assigns tile colours and derives text contrast from them.
package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/marquee/internal/review"
)

// Color is a hex colour in #RRGGBB form.
type Color string

// Luminance weights on the 0-255 channel scale.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114

	darkThreshold = 0.5
)

// Default colours.
const (
	Problem Color = "#EE4266"
	Sun     Color = "#F4D35E"
	Navy    Color = "#0D3B66"
	Coral   Color = "#FF6B6B"
	Mustard Color = "#FFD93D"
	Mint    Color = "#6BCB77"
	Azure   Color = "#4D96FF"
	Ink     Color = "#2D3047"
)

// blackText lists colours whose foreground must be black regardless of what
// luminance says.
var blackText = map[Color]struct{}{
	Problem: {},
	Azure:   {},
}

// Luminance returns the perceived brightness of c in [0, 1]. The second
// return value is false when c cannot be parsed.
func Luminance(c Color) (float64, bool) {
	parsed, err := colorful.Hex(strings.TrimSpace(string(c)))
	if err != nil {
		return 0, false
	}
	// go-colorful channels are already normalised to [0, 1], which equals the
	// 0-255 weighted sum divided by 255.
	return lumaRed*parsed.R + lumaGreen*parsed.G + lumaBlue*parsed.B, true
}

// IsDark reports whether text on c should be light. Unparseable colours are
// treated as dark.
func IsDark(c Color) bool {
	l, ok := Luminance(c)
	if !ok {
		return true
	}
	return l < darkThreshold
}

// NeedsBlackText reports whether c is whitelisted for black foreground text.
func NeedsBlackText(c Color) bool {
	_, ok := blackText[Color(strings.ToUpper(string(c)))]
	return ok
}

// Policy picks a colour for the i-th item of a column.
type Policy interface {
	ColorFor(index int, category review.Category, column int) Color
}

// CategoryFirst gives flagged items a dedicated colour and cycles normal
// items through a short palette by position.
type CategoryFirst struct {
	Problem Color
	Normal  []Color
}

// DefaultCategoryFirst returns the two-colour policy with the problem accent.
func DefaultCategoryFirst() CategoryFirst {
	return CategoryFirst{Problem: Problem, Normal: []Color{Sun, Navy}}
}

func (p CategoryFirst) ColorFor(index int, category review.Category, _ int) Color {
	if category == review.Flagged {
		return p.Problem
	}
	return pick(p.Normal, index)
}

// PositionFirst cycles every item through Colors, shifting each column by
// three so neighbouring columns do not line up.
type PositionFirst struct {
	Colors []Color
}

// DefaultPositionFirst returns the five-colour positional policy.
func DefaultPositionFirst() PositionFirst {
	return PositionFirst{Colors: []Color{Coral, Mustard, Mint, Azure, Ink}}
}

func (p PositionFirst) ColorFor(index int, _ review.Category, column int) Color {
	return pick(p.Colors, index+column*3)
}

func pick(colors []Color, n int) Color {
	if len(colors) == 0 {
		return Ink
	}
	n %= len(colors)
	if n < 0 {
		n += len(colors)
	}
	return colors[n]
}

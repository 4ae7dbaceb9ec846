package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text segments that all share one background colour. ANSI
// resets between separately styled segments otherwise leave gaps in the
// background. See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for the given colour.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with style on the shared background, spaces included.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return wordStyle.Render(text)
	}
	words := strings.Split(text, " ")
	result := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			result = append(result, "")
			continue
		}
		result = append(result, wordStyle.Render(w))
	}
	return strings.Join(result, b.space)
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// FillLine cuts or pads rendered content to exactly width cells with the
// background colour.
func (b BgStyle) FillLine(content string, width int) string {
	if width <= 0 {
		return ""
	}
	line := lipgloss.NewStyle().Inline(true).MaxWidth(width).Render(content)
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(line)
}

package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/five82/marquee/internal/config"
)

func TestGetThemeFallsBackToNight(t *testing.T) {
	assert.Equal(t, config.ThemeDay, GetTheme(config.ThemeDay).Name)
	assert.Equal(t, config.ThemeNight, GetTheme("sepia").Name)
}

func TestNextThemeCycles(t *testing.T) {
	assert.Equal(t, config.ThemeNight, NextTheme(config.ThemeDay))
	assert.Equal(t, config.ThemeDay, NextTheme(config.ThemeNight))
	assert.Equal(t, config.ThemeDay, NextTheme("unknown"))
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range themeOrder {
		th := GetTheme(name)
		for field, value := range map[string]string{
			"Background": th.Background,
			"Surface":    th.Surface,
			"Text":       th.Text,
			"Muted":      th.Muted,
			"Accent":     th.Accent,
			"Ink":        th.Ink,
			"Paper":      th.Paper,
			"Black":      th.Black,
		} {
			assert.NotEmpty(t, value, "%s.%s", name, field)
		}
	}
}

func TestFillLineExactWidth(t *testing.T) {
	bg := NewBgStyle("#000000")

	assert.Equal(t, 10, lipgloss.Width(bg.FillLine("abc", 10)))
	assert.Equal(t, 4, lipgloss.Width(bg.FillLine("abcdefgh", 4)))
	assert.Empty(t, bg.FillLine("abc", 0))
}

func TestTilePadding(t *testing.T) {
	assert.Equal(t, 2, tilePadding(1, 30))
	assert.Equal(t, 1, tilePadding(0.4, 30))
	assert.Equal(t, 0, tilePadding(1, 4))
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/config"
)

// Theme defines the colours of everything around the tiles. Tile colours
// come from the palette and do not change with the theme.
type Theme struct {
	Name config.Theme

	// Base colors
	Background string // Wall background between tiles
	Surface    string // Header and footer bars

	// Text colors
	Text    string
	Muted   string
	Accent  string
	Warning string
	Danger  string

	// Tile text
	Ink   string // text on light tiles
	Paper string // text on dark tiles
	Black string // whitelisted high-contrast author text
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Logo lipgloss.Style
}

var themes = map[config.Theme]Theme{
	config.ThemeDay:   dayTheme(),
	config.ThemeNight: nightTheme(),
}

var themeOrder = []config.Theme{config.ThemeDay, config.ThemeNight}

// GetTheme returns a theme by name, falling back to night.
func GetTheme(name config.Theme) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current config.Theme) config.Theme {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func dayTheme() Theme {
	// Tailwind CSS stone palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: config.ThemeDay,

		Background: "#f5f5f4", // stone-100
		Surface:    "#e7e5e4", // stone-200

		Text:    "#1c1917", // stone-900
		Muted:   "#78716c", // stone-500
		Accent:  "#0369a1", // sky-700
		Warning: "#b45309", // amber-700
		Danger:  "#b91c1c", // red-700

		Ink:   "#1c1917",
		Paper: "#fafaf9",
		Black: "#000000",
	}
}

func nightTheme() Theme {
	// Tailwind CSS slate palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: config.ThemeNight,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		Ink:   "#0f172a",
		Paper: "#f8fafc",
		Black: "#000000",
	}
}

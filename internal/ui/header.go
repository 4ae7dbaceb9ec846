package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/motion"
)

// renderHeader renders the status bar: counts on the left, wall state on
// the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []string{bg.Render("marquee", styles.Logo)}
	if m.dataLoaded {
		total, flagged := m.snapshot.Dataset.Counts()
		left = append(left, bg.Render(fmt.Sprintf("%d reviews", total), styles.Text))
		if m.cfg.Classification {
			flaggedStyle := styles.MutedText
			if flagged > 0 {
				flaggedStyle = styles.WarningText
			}
			left = append(left, bg.Render(fmt.Sprintf("%d flagged", flagged), flaggedStyle))
		}
	}

	right := []string{
		bg.Render(m.modeLabel(), styles.AccentText),
		bg.Render(fmt.Sprintf("%d cols", m.numColumns), styles.Text),
		bg.Render(string(m.theme.Name), styles.MutedText),
		bg.Render(fmt.Sprintf("scale %.2f", m.geometry.FontScale), styles.MutedText),
	}

	leftStr := bg.Join(left, "  ")
	rightStr := bg.Join(right, "  ")

	gap := m.width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		return bg.FillLine(bg.Spaces(1)+leftStr, m.width)
	}
	return bg.FillLine(bg.Spaces(1)+leftStr+bg.Spaces(gap)+rightStr, m.width)
}

// modeLabel describes the speed mode and, in manual mode, the scroll
// position.
func (m Model) modeLabel() string {
	switch m.engine.Regime() {
	case motion.RegimeDecelerating:
		return "manual · coasting"
	case motion.RegimeTracking:
		pct := 0
		if limit := m.geometry.MaxScroll(); limit > 0 {
			pct = int(m.scrollY / limit * 100)
		}
		return fmt.Sprintf("manual %d%%", pct)
	default:
		return "auto"
	}
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.theme.Surface)
	return bg.FillLine(bg.Spaces(1)+m.help.View(m.keys), m.width)
}

package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/content"
	"github.com/five82/marquee/internal/layout"
	"github.com/five82/marquee/internal/motion"
	"github.com/five82/marquee/internal/review"
)

const flaggedTag = "▲ "

// renderMain renders header, wall and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderBody renders the wall, or a placeholder while loading or empty.
func (m Model) renderBody() string {
	rows := m.wallRows()
	if rows == 0 {
		return ""
	}

	styles := m.theme.Styles()
	switch {
	case !m.dataLoaded:
		return m.placeholder(m.spinner.View() + " " + styles.MutedText.Render("Loading reviews..."))
	case m.snapshot.Dataset.Empty():
		msg := styles.Text.Render("No reviews to show")
		if m.snapshot.LoadErr != nil {
			msg += "\n" + styles.DangerText.Render("could not load "+m.cfg.DataPath)
		}
		return m.placeholder(msg)
	}
	return m.renderWall()
}

func (m Model) placeholder(text string) string {
	bg := lipgloss.Color(m.theme.Background)
	return lipgloss.Place(
		m.width,
		m.wallRows(),
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Background(bg).Render(text),
		lipgloss.WithWhitespaceBackground(bg),
	)
}

// renderWall slices each column's tile strip to the rows currently on screen.
func (m Model) renderWall() string {
	bg := NewBgStyle(m.theme.Background)
	colWidth := m.columnWidth()
	blank := bg.Spaces(colWidth)

	lines := make([]string, m.wallRows())
	parts := make([]string, len(m.tiles))
	for row := range lines {
		for col := range m.tiles {
			parts[col] = m.columnLine(col, row, blank)
		}
		line := bg.Spaces(wallMargin) + bg.Join(parts, strings.Repeat(" ", columnGap))
		lines[row] = bg.FillLine(line, m.width)
	}
	return strings.Join(lines, "\n")
}

// columnLine returns the rendered line of column col at screen row.
func (m Model) columnLine(col, row int, blank string) string {
	tiles := m.tiles[col]
	if len(tiles) == 0 {
		return blank
	}

	cell := float64(m.cellHeight())
	translate := motion.Translation(col, m.engine.Offset(), m.initialDown)

	// Strip coordinates start at the top of the first tile.
	y := float64(row)*cell - translate - layout.Spacing
	if y < 0 {
		return blank
	}
	stride := m.geometry.TileHeight + layout.Spacing
	if m.geometry.TileHeight <= 0 {
		return blank
	}
	idx := int(y / stride)
	if idx >= len(tiles) {
		return blank
	}
	within := y - float64(idx)*stride
	if within >= m.geometry.TileHeight {
		return blank
	}
	line := int(within / cell)
	if line >= len(tiles[idx]) {
		return blank
	}
	return tiles[idx][line]
}

// columnWidth splits the terminal width between the columns.
func (m Model) columnWidth() int {
	n := m.numColumns
	usable := m.width - wallMargin*2 - columnGap*(n-1)
	w := usable / n
	if w < 1 {
		return 1
	}
	return w
}

// tileLines is the number of terminal rows a tile spans.
func (m Model) tileLines() int {
	lines := int(math.Ceil(m.geometry.TileHeight / float64(m.cellHeight())))
	if lines < 1 {
		return 1
	}
	return lines
}

// renderTiles pre-renders every tile of every column.
func (m Model) renderTiles() [][][]string {
	width := m.columnWidth()
	lines := m.tileLines()
	pad := tilePadding(m.geometry.FontScale, width)

	out := make([][][]string, len(m.columns))
	for col, items := range m.columns {
		out[col] = make([][]string, len(items))
		for i, item := range items {
			out[col][i] = m.renderTile(item, width, lines, pad)
		}
	}
	return out
}

// renderTile renders one tile as exactly lines rows of width cells.
func (m Model) renderTile(item content.DisplayItem, width, lines, pad int) []string {
	bg := lipgloss.Color(string(item.Color))

	fg := m.theme.Paper
	if item.LightBackground {
		fg = m.theme.Ink
	}
	authorFg := fg
	if item.HighContrastAuthor {
		authorFg = m.theme.Black
	}

	inner := width - pad*2
	if inner < 1 {
		inner, pad = width, 0
	}

	author := item.Author
	if item.Category == review.Flagged {
		author = flaggedTag + author
	}
	authorBlock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(authorFg)).
		Background(bg).
		Bold(true).
		Width(inner).
		Render(author)
	bodyBlock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(bg).
		Width(inner).
		Render(item.Content)

	box := lipgloss.NewStyle().
		Background(bg).
		Padding(0, pad).
		Width(width).
		Height(lines).
		MaxHeight(lines).
		Render(lipgloss.JoinVertical(lipgloss.Left, authorBlock, bodyBlock))

	return strings.Split(box, "\n")
}

// tilePadding scales horizontal tile padding with the font scale.
func tilePadding(scale float64, width int) int {
	pad := int(math.Round(2 * scale))
	if pad < 1 {
		pad = 1
	}
	if width <= pad*2 {
		return 0
	}
	return pad
}

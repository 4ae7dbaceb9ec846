package ui

// Screen chrome around the wall, in terminal cells.
const (
	// chromeRows is the header plus the footer.
	chromeRows = 2

	// wallMargin is the background left and right of the columns.
	wallMargin = 1

	// columnGap separates adjacent columns.
	columnGap = 2
)

// Pixel conversion.
const (
	// defaultCellHeight is used when the config leaves cell_height unset.
	defaultCellHeight = 16

	// lineStepRows is how far one wheel notch or arrow key scrolls the page.
	lineStepRows = 4
)

// Package ui renders the review wall as a Bubble Tea program.
//
// # Layout
//
// The screen is a one-row header, the wall, and a one-row key help footer.
// The wall is split into 1-4 columns. Each column is a strip of tiles
// pre-rendered with Lip Gloss and sliced to the visible window on every
// frame, so per-frame work is string selection only.
//
// # Units
//
// The offset engine and layout calculator work in pixels. A terminal row is
// Config.CellHeight pixels (16 by default), which keeps the engine's speed,
// easing and tile spacing exact while the view quantises to whole rows.
//
// # Event Flow
//
//  1. Run starts a frame.Loop that sends a frameMsg per tick
//  2. frameMsg advances the motion.Engine by one step
//  3. loadedMsg arrives once the loader finishes and fills the columns
//  4. WindowSizeMsg recomputes geometry and keeps the offset in range
//  5. Keys and the mouse wheel change mode, theme, columns and page scroll
//
// Changing the column count resets the offset and page scroll to zero.
//
// # Key Bindings
//
//   - space/m: Auto/manual speed mode
//   - t: Day/night theme
//   - 1-4, +/-: Column count
//   - j/k, pgup/pgdown, g/G, wheel: Page scroll (manual mode)
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui

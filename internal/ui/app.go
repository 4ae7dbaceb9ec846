package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/content"
	"github.com/five82/marquee/internal/frame"
	"github.com/five82/marquee/internal/layout"
	"github.com/five82/marquee/internal/motion"
	"github.com/five82/marquee/internal/palette"
	"github.com/five82/marquee/internal/state"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Loaded  <-chan struct{} // closed once Store holds the load result
	Config  config.Config
	Logger  zerolog.Logger
}

// Model is the wall's Bubble Tea state. All mutable view state lives here;
// the engine, layout and distributor are driven from Update.
type Model struct {
	// Configuration
	ctx    context.Context
	cfg    config.Config
	store  *state.Store
	loaded <-chan struct{}
	log    zerolog.Logger

	// UI state
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot   state.Snapshot
	dataLoaded bool

	// Wall state
	numColumns  int
	table       layout.Table
	geometry    layout.State
	engine      *motion.Engine
	distributor content.Distributor
	columns     [][]content.DisplayItem
	tiles       [][][]string // rendered tile lines per column and item
	scrollY     float64      // page scroll position in pixels
	initialDown float64      // odd-column starting translation
}

// New creates the wall model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config

	table := layout.ClassifiedTable()
	var policy palette.Policy = palette.DefaultCategoryFirst()
	if cfg.Variant == config.VariantCycling {
		table = layout.CyclingTable()
		policy = palette.DefaultPositionFirst()
	}

	return Model{
		ctx:     ctx,
		cfg:     cfg,
		store:   opts.Store,
		loaded:  opts.Loaded,
		log:     opts.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		theme:   GetTheme(cfg.Theme),

		numColumns: layout.ClampColumns(cfg.Columns),
		table:      table,
		engine:     motion.New(cfg.CoastOnManual),
		distributor: content.Distributor{
			Policy:        policy,
			AuthorLimit:   cfg.AuthorLimit,
			ContentLimit:  cfg.ContentLimit,
			FlaggedColumn: cfg.FlaggedColumn,
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, waitForLoadCmd(m.ctx, m.loaded, m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout(!m.ready)
		m.ready = true
		return m, nil

	case frameMsg:
		m.advance()
		return m, nil

	case loadedMsg:
		m.snapshot = state.Snapshot(msg)
		m.dataLoaded = true
		total, flagged := m.snapshot.Dataset.Counts()
		m.log.Debug().Int("reviews", total).Int("flagged", flagged).Msg("wall populated")
		m.rebuild()
		return m, nil

	case spinner.TickMsg:
		// The spinner stops re-arming once the data is in.
		if m.dataLoaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.rebuild()

	case key.Matches(msg, m.keys.ToggleMode):
		m.toggleMode()

	case key.Matches(msg, m.keys.OneColumn):
		m.setColumns(1)
	case key.Matches(msg, m.keys.TwoColumns):
		m.setColumns(2)
	case key.Matches(msg, m.keys.ThreeColumns):
		m.setColumns(3)
	case key.Matches(msg, m.keys.FourColumns):
		m.setColumns(4)
	case key.Matches(msg, m.keys.MoreColumns):
		m.setColumns(m.numColumns + 1)
	case key.Matches(msg, m.keys.FewerColumns):
		m.setColumns(m.numColumns - 1)

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-m.lineStep())
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(m.lineStep())
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-float64(m.geometry.ViewportHeight))
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(float64(m.geometry.ViewportHeight))
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.geometry.MaxScroll())
	}

	return m, nil
}

// handleMouse maps the wheel onto page scroll.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-m.lineStep())
	case tea.MouseButtonWheelDown:
		m.scrollBy(m.lineStep())
	}
	return m, nil
}

// advance runs one engine frame and adopts the synced scroll position when
// coasting hands over to manual tracking.
func (m *Model) advance() {
	f := m.engine.Step()
	if f.Synced {
		m.scrollY = f.ScrollY
		m.log.Debug().Float64("offset", f.Offset).Float64("scroll", f.ScrollY).Msg("coast finished")
	}
}

func (m *Model) toggleMode() {
	next := motion.Manual
	if m.engine.State().Mode == motion.Manual {
		next = motion.Auto
	}
	m.engine.SetMode(next)

	// Without coasting, manual input resumes from the current offset.
	if m.engine.Regime() == motion.RegimeTracking {
		m.scrollY = motion.ScrollFor(m.engine.Offset())
	}
	m.log.Debug().Stringer("mode", next).Stringer("regime", m.engine.Regime()).Msg("mode changed")
}

// setColumns changes the column count and resets all scroll state.
func (m *Model) setColumns(n int) {
	n = layout.ClampColumns(n)
	if n == m.numColumns {
		return
	}
	m.numColumns = n
	m.relayout(true)
}

// relayout recomputes geometry for the current viewport and column count.
// With reset, the offset and page scroll return to zero and the odd-column
// starting translation is re-recorded.
func (m *Model) relayout(reset bool) {
	m.geometry = layout.Calculate(m.viewportHeight(), m.numColumns, m.table)
	m.engine.SetMaxOffset(m.geometry.MaxOffset)

	if reset {
		m.engine.Reset()
		m.scrollY = 0
		m.initialDown = m.geometry.MaxOffset
	} else {
		m.scrollY = clampFloat(m.scrollY, 0, m.geometry.MaxScroll())
		m.initialDown = clampFloat(m.initialDown, 0, m.geometry.MaxOffset)
	}
	m.rebuild()
}

// rebuild materialises column content and pre-renders every tile.
func (m *Model) rebuild() {
	m.columns = m.distributor.Columns(m.numColumns, m.snapshot.Dataset)
	m.tiles = m.renderTiles()
}

func (m *Model) scrollBy(delta float64) {
	m.scrollTo(m.scrollY + delta)
}

// scrollTo moves the simulated page scroll position. The engine only takes
// it as a target while tracking.
func (m *Model) scrollTo(y float64) {
	m.scrollY = clampFloat(y, 0, m.geometry.MaxScroll())
	m.engine.Scroll(m.scrollY)
}

// lineStep is the page scroll distance of one wheel notch or arrow key.
func (m Model) lineStep() float64 {
	return float64(m.cellHeight() * lineStepRows)
}

func (m Model) cellHeight() int {
	if m.cfg.CellHeight <= 0 {
		return defaultCellHeight
	}
	return m.cfg.CellHeight
}

// wallRows is the number of terminal rows available to the columns.
func (m Model) wallRows() int {
	rows := m.height - chromeRows
	if rows < 0 {
		return 0
	}
	return rows
}

// viewportHeight is the wall height in pixels.
func (m Model) viewportHeight() int {
	return m.wallRows() * m.cellHeight()
}

// PageHeight is the page height manual scroll input needs to reach the end
// of the wall.
func (m Model) PageHeight() float64 {
	return m.geometry.PageHeight()
}

// Messages

type frameMsg time.Time

type loadedMsg state.Snapshot

// Commands

func waitForLoadCmd(ctx context.Context, done <-chan struct{}, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		if done != nil {
			select {
			case <-done:
			case <-ctx.Done():
				return nil
			}
		}
		return loadedMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and the frame loop driving it. The loop
// is stopped exactly once, when the program exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	loop := frame.NewLoop(opts.Config.FrameRate)
	if err := loop.Start(ctx, func(now time.Time) { p.Send(frameMsg(now)) }); err != nil {
		return err
	}
	defer loop.Stop()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

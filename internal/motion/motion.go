// Package motion drives the wall's scroll offset one frame at a time.
//
// A single scalar offset is advanced by one of three regimes:
//
//   - Auto: constant-speed scroll that jumps back to zero at the end.
//   - Decelerating: the auto-scroll momentum coasting to a stop after the
//     user switches to manual mode.
//   - ManualTracking: eased tracking of a target derived from page scroll.
//
// Engines are not safe for concurrent use; the view that owns one steps it
// from its update loop.
package motion

import "math"

const (
	// AutoSpeed is the auto-scroll speed in pixels per frame.
	AutoSpeed = 1.035

	// Decay is applied to the coasting velocity every frame, and once more
	// when the velocity is added to the offset.
	Decay = 0.95

	// StopVelocity ends deceleration once the velocity drops below it.
	StopVelocity = 0.1

	// Lerp is the fraction of the remaining distance covered per frame while
	// tracking a manual target.
	Lerp = 0.08

	// SnapDistance is how close tracking gets before jumping onto the target.
	SnapDistance = 0.5

	// ScrollFactor converts page scroll position into offset.
	ScrollFactor = 0.5
)

// Mode is the user-selected speed mode.
type Mode int

const (
	Auto Mode = iota
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "manual"
	}
	return "auto"
}

// Regime is the rule currently driving the offset.
type Regime int

const (
	RegimeAuto Regime = iota
	RegimeTracking
	RegimeDecelerating
)

func (r Regime) String() string {
	switch r {
	case RegimeTracking:
		return "tracking"
	case RegimeDecelerating:
		return "decelerating"
	default:
		return "auto"
	}
}

// OffsetState is the engine's mutable state.
type OffsetState struct {
	Current      float64
	Target       float64
	Velocity     float64
	Mode         Mode
	Decelerating bool
}

// Frame reports the result of one Step.
type Frame struct {
	Offset  float64
	Regime  Regime
	Wrapped bool

	// Synced is set on the one frame where coasting hands over to manual
	// tracking. ScrollY is then the page scroll position equivalent to
	// Offset, which the view must adopt so manual input resumes in place.
	Synced  bool
	ScrollY float64
}

// Engine owns the offset state machine.
type Engine struct {
	state     OffsetState
	maxOffset float64
	coast     bool
}

// New returns an engine in auto mode. With coast set, switching to manual
// mode carries the auto-scroll momentum into a deceleration phase first.
func New(coast bool) *Engine {
	return &Engine{coast: coast}
}

// State returns a copy of the current state.
func (e *Engine) State() OffsetState {
	return e.state
}

// Offset returns the current offset.
func (e *Engine) Offset() float64 {
	return e.state.Current
}

// MaxOffset returns the scroll range upper bound.
func (e *Engine) MaxOffset() float64 {
	return e.maxOffset
}

// SetMaxOffset updates the scroll range and pulls the offset and target
// back inside it.
func (e *Engine) SetMaxOffset(limit float64) {
	if limit < 0 || math.IsNaN(limit) {
		limit = 0
	}
	e.maxOffset = limit
	e.state.Current = e.clamp(e.state.Current)
	e.state.Target = e.clamp(e.state.Target)
}

// Reset zeroes the offset, target and velocity and cancels deceleration.
// The mode is kept.
func (e *Engine) Reset() {
	e.state = OffsetState{Mode: e.state.Mode}
}

// Regime reports which rule the next Step applies.
func (e *Engine) Regime() Regime {
	switch {
	case e.state.Mode == Auto:
		return RegimeAuto
	case e.state.Decelerating:
		return RegimeDecelerating
	default:
		return RegimeTracking
	}
}

// SetMode switches between auto and manual mode. Setting the current mode
// is a no-op.
func (e *Engine) SetMode(mode Mode) {
	if mode == e.state.Mode {
		return
	}
	e.state.Mode = mode

	switch mode {
	case Manual:
		e.state.Target = e.state.Current
		if e.coast {
			e.state.Velocity = AutoSpeed
			e.state.Decelerating = true
			return
		}
		e.state.Velocity = 0
		e.state.Decelerating = false
	case Auto:
		e.state.Velocity = 0
		e.state.Decelerating = false
		e.state.Target = e.state.Current
	}
}

// Scroll feeds a page scroll position into the manual target. It is ignored
// unless the engine is tracking, and reports whether the target changed.
func (e *Engine) Scroll(pageScrollY float64) bool {
	if e.Regime() != RegimeTracking {
		return false
	}
	target := TargetFor(pageScrollY, e.maxOffset)
	if target == e.state.Target {
		return false
	}
	e.state.Target = target
	return true
}

// Step advances the offset by one frame.
func (e *Engine) Step() Frame {
	var f Frame

	switch e.Regime() {
	case RegimeAuto:
		f.Wrapped = e.stepAuto()
	case RegimeDecelerating:
		if e.stepDecelerating() {
			f.Synced = true
			f.ScrollY = ScrollFor(e.state.Current)
		}
	case RegimeTracking:
		e.stepTracking()
	}

	f.Offset = e.state.Current
	f.Regime = e.Regime()
	return f
}

func (e *Engine) stepAuto() bool {
	wrapped := false
	if e.maxOffset > 0 {
		e.state.Current += AutoSpeed
		if e.state.Current >= e.maxOffset {
			e.state.Current = 0
			wrapped = true
		}
	}
	e.state.Target = e.state.Current
	return wrapped
}

// stepDecelerating reports whether deceleration ended on this frame.
func (e *Engine) stepDecelerating() bool {
	e.state.Velocity *= Decay
	e.state.Current += e.state.Velocity * Decay

	if e.state.Current > e.maxOffset {
		e.state.Current = e.maxOffset
		e.stopCoasting()
		return true
	}
	if e.state.Current < 0 {
		e.state.Current = 0
		e.stopCoasting()
		return true
	}
	if math.Abs(e.state.Velocity) < StopVelocity {
		e.stopCoasting()
		return true
	}
	return false
}

func (e *Engine) stopCoasting() {
	e.state.Velocity = 0
	e.state.Decelerating = false
	e.state.Target = e.state.Current
}

func (e *Engine) stepTracking() {
	remaining := e.state.Target - e.state.Current
	if math.Abs(remaining) < SnapDistance {
		e.state.Current = e.state.Target
		return
	}
	e.state.Current += remaining * Lerp
}

func (e *Engine) clamp(v float64) float64 {
	return clamp(v, 0, e.maxOffset)
}

// TargetFor maps a page scroll position to a manual target within
// [0, maxOffset].
func TargetFor(pageScrollY, maxOffset float64) float64 {
	if maxOffset <= 0 {
		return 0
	}
	return clamp(pageScrollY*ScrollFactor, 0, maxOffset)
}

// ScrollFor maps an offset back to its page scroll position.
func ScrollFor(offset float64) float64 {
	return offset / ScrollFactor
}

// Translation is the vertical translation of a column. Even columns move
// up with the offset while odd columns start at the bottom and move down.
func Translation(column int, offset, initialDown float64) float64 {
	if column%2 == 0 {
		return -offset
	}
	return -initialDown + offset
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

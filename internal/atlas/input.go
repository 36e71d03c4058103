package atlas

import (
	"math"
	"time"

	"slimeatlas/internal/geom"
)

// Input windows.
const (
	ResizeThrottle  = 50 * time.Millisecond
	WheelDebounce   = 10 * time.Millisecond
	PinchDebounce   = 50 * time.Millisecond
	PanMoveDebounce = 10 * time.Millisecond
)

// Limits bound the scale and fix its step.
type Limits struct {
	Min  float64
	Max  float64
	Step float64
}

func (l Limits) Clamp(s float64) float64 {
	return math.Min(math.Max(s, l.Min), l.Max)
}

// Quantize rounds s to the nearest multiple of Step.
func (l Limits) Quantize(s float64) float64 {
	if l.Step <= 0 {
		return s
	}
	inv := 1 / l.Step
	return math.Round(s*inv) / inv
}

// Normalize quantizes then clamps.
func (l Limits) Normalize(s float64) float64 {
	return l.Clamp(l.Quantize(s))
}

func (l Limits) StepUp(s float64) float64   { return math.Min(s+l.Step, l.Max) }
func (l Limits) StepDown(s float64) float64 { return math.Max(s-l.Step, l.Min) }

// FromFraction maps a slider position in [0, 1] onto the range.
func (l Limits) FromFraction(f float64) float64 {
	f = math.Min(math.Max(f, 0), 1)
	return l.Normalize(l.Min + f*(l.Max-l.Min))
}

// Fraction is the inverse of FromFraction.
func (l Limits) Fraction(s float64) float64 {
	if l.Max <= l.Min {
		return 0
	}
	return math.Min(math.Max((s-l.Min)/(l.Max-l.Min), 0), 1)
}

// ScaleUpdate and CenterUpdate are proposed updates: functions from the
// current authoritative value to the next one.
type (
	ScaleUpdate  func(prev float64) float64
	CenterUpdate func(prev geom.Point) geom.Point
)

// WheelScale proposes one step up for a positive wheel delta and one step
// down otherwise.
func WheelScale(delta float64, l Limits) ScaleUpdate {
	if delta > 0 {
		return l.StepUp
	}
	return l.StepDown
}

// Debouncer passes the first event and then only events that arrive at least
// Window after the last one it passed.
type Debouncer struct {
	Window time.Duration

	last   time.Time
	primed bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{Window: window}
}

// Accept reports whether an event observed at now passes.
func (d *Debouncer) Accept(now time.Time) bool {
	if d.primed && now.Sub(d.last) < d.Window {
		return false
	}
	d.last = now
	d.primed = true
	return true
}

// Throttle keeps the latest value pushed during a window. The caller
// schedules Flush after Window whenever Push returns true.
type Throttle[T any] struct {
	Window time.Duration

	pending T
	open    bool
}

func NewThrottle[T any](window time.Duration) *Throttle[T] {
	return &Throttle[T]{Window: window}
}

// Push records v and reports whether it opened a new window.
func (t *Throttle[T]) Push(v T) bool {
	t.pending = v
	if t.open {
		return false
	}
	t.open = true
	return true
}

// Flush closes the window and returns the latest value pushed in it.
func (t *Throttle[T]) Flush() (T, bool) {
	if !t.open {
		var zero T
		return zero, false
	}
	t.open = false
	return t.pending, true
}

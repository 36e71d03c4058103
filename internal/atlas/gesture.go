package atlas

import "slimeatlas/internal/geom"

// Phase is the position of an event within a gesture.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// Tracker holds the baseline of one gesture. The zero value is idle.
type Tracker[T any] struct {
	baseline T
	active   bool
}

// Active reports whether a baseline is held.
func (t Tracker[T]) Active() bool { return t.active }

// Baseline returns the captured value and whether one is held.
func (t Tracker[T]) Baseline() (T, bool) { return t.baseline, t.active }

// Step applies one event. A start captures current as the baseline; a move
// while active returns the unchanged baseline with move set; end and cancel
// drop the baseline. A move while idle is ignored.
func (t Tracker[T]) Step(phase Phase, current T) (next Tracker[T], baseline T, move bool) {
	switch phase {
	case PhaseStart:
		return Tracker[T]{baseline: current, active: true}, baseline, false
	case PhaseMove:
		if t.active {
			return t, t.baseline, true
		}
		return t, baseline, false
	}
	return Tracker[T]{}, baseline, false
}

// Ratio converts displayed pixels to surface pixels on each axis.
type Ratio struct {
	X float64
	Z float64
}

// PanEvent carries the pointer travel since the gesture started, in displayed pixels.
type PanEvent struct {
	Phase  Phase
	DeltaX float64
	DeltaY float64
}

// Pan turns drag gestures into center proposals.
type Pan struct {
	tracker Tracker[geom.Point]
}

// Active reports whether a drag is in progress.
func (p *Pan) Active() bool { return p.tracker.Active() }

// Handle applies ev given the current center and scale. It returns the
// proposed center when ev is a move of an active gesture.
func (p *Pan) Handle(ev PanEvent, center geom.Point, scale float64, ratio Ratio) (geom.Point, bool) {
	var (
		c0   geom.Point
		move bool
	)
	p.tracker, c0, move = p.tracker.Step(ev.Phase, center)
	if !move || scale <= 0 {
		return geom.Point{}, false
	}
	dx := -ev.DeltaX * ratio.X / scale
	dz := -ev.DeltaY * ratio.Z / scale
	return c0.Offset(dx, dz).Round(), true
}

// PinchEvent carries the scale ratio since the gesture started.
type PinchEvent struct {
	Phase Phase
	Scale float64
}

// Pinch turns pinch gestures into scale proposals.
type Pinch struct {
	Limits Limits

	tracker Tracker[float64]
}

func (p *Pinch) Active() bool { return p.tracker.Active() }

// Handle applies ev given the current scale. It returns the proposed scale,
// quantized and clamped, when ev is a move of an active gesture.
func (p *Pinch) Handle(ev PinchEvent, scale float64) (float64, bool) {
	var (
		s0   float64
		move bool
	)
	p.tracker, s0, move = p.tracker.Step(ev.Phase, scale)
	if !move {
		return 0, false
	}
	return p.Limits.Normalize(s0 * ev.Scale), true
}

package actions

import (
	"math"

	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// timeEpsilon absorbs the rounding of summed frame deltas so a 1.2s wait
// made of 72 frames at 60 TPS finishes on the 72nd frame.
const timeEpsilon = 1e-9

// Action is a unit of timed work driven by a Runner.
type Action interface {
	// Update advances the action by dt seconds. Once the action is finished
	// it reports done and returns the part of dt it did not use.
	Update(dt float64) (remaining float64, done bool)
	// Reset rewinds the action so it can run again.
	Reset()
}

// Positioner is anything an action can move.
type Positioner interface {
	Position() kinematic.Vector
	SetPosition(position kinematic.Vector)
}

// moveBy moves its target by a fixed displacement. The displacement is
// applied incrementally so other code can move the target at the same time.
type moveBy struct {
	target   Positioner
	delta    kinematic.Vector
	duration float64

	tween    *gween.Tween
	elapsed  float64
	progress float64
}

// MoveBy moves target by (dx, dy) at a constant speed over duration seconds.
func MoveBy(target Positioner, dx, dy, duration float64) Action {
	m := &moveBy{
		target:   target,
		delta:    kinematic.Vector{X: dx, Y: dy},
		duration: duration,
	}
	m.Reset()
	return m
}

func (m *moveBy) Update(dt float64) (float64, bool) {
	if m.duration <= 0 {
		m.apply(1)
		return dt, true
	}

	m.elapsed += dt
	value, finished := m.tween.Update(float32(dt))
	progress := float64(value)
	if m.elapsed >= m.duration-timeEpsilon {
		finished = true
	}
	if finished {
		progress = 1
	}
	m.apply(progress)

	if !finished {
		return 0, false
	}
	return math.Max(0, m.elapsed-m.duration), true
}

func (m *moveBy) apply(progress float64) {
	step := progress - m.progress
	if step == 0 {
		return
	}
	m.target.SetPosition(m.target.Position().Add(m.delta.Scale(step)))
	m.progress = progress
}

func (m *moveBy) Reset() {
	m.tween = gween.New(0, 1, float32(m.duration), ease.Linear)
	m.elapsed = 0
	m.progress = 0
}

type wait struct {
	duration float64
	elapsed  float64
}

// Wait does nothing for duration seconds.
func Wait(duration float64) Action {
	return &wait{duration: duration}
}

func (w *wait) Update(dt float64) (float64, bool) {
	w.elapsed += dt
	if w.elapsed < w.duration-timeEpsilon {
		return 0, false
	}
	return math.Max(0, w.elapsed-w.duration), true
}

func (w *wait) Reset() {
	w.elapsed = 0
}

type run struct {
	fn func()
}

// Run calls fn once and finishes immediately.
func Run(fn func()) Action {
	return &run{fn: fn}
}

func (r *run) Update(dt float64) (float64, bool) {
	r.fn()
	return dt, true
}

func (r *run) Reset() {}

type sequence struct {
	actions []Action
	index   int
}

// Sequence runs actions one after another. Time left over by a finished
// action is handed to the next one in the same update.
func Sequence(actions ...Action) Action {
	return &sequence{actions: actions}
}

func (s *sequence) Update(dt float64) (float64, bool) {
	for s.index < len(s.actions) {
		remaining, done := s.actions[s.index].Update(dt)
		if !done {
			return 0, false
		}
		s.index++
		dt = remaining
	}
	return dt, true
}

func (s *sequence) Reset() {
	s.index = 0
	for _, a := range s.actions {
		a.Reset()
	}
}

type repeatForever struct {
	action Action
}

// RepeatForever restarts action every time it finishes. It never finishes
// on its own; cancel it through its Runner handle.
func RepeatForever(action Action) Action {
	return &repeatForever{action: action}
}

func (r *repeatForever) Update(dt float64) (float64, bool) {
	for {
		remaining, done := r.action.Update(dt)
		if !done {
			return 0, false
		}
		r.action.Reset()
		if (dt > 0 && remaining >= dt) || (dt == 0 && remaining == 0) {
			// the action took no time, go again next update
			return 0, false
		}
		dt = remaining
	}
}

func (r *repeatForever) Reset() {
	r.action.Reset()
}

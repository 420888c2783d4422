package actions

import (
	"testing"

	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	pos kinematic.Vector
}

func (p *point) Position() kinematic.Vector {
	return p.pos
}

func (p *point) SetPosition(pos kinematic.Vector) {
	p.pos = pos
}

func TestMoveBy(t *testing.T) {
	p := &point{pos: kinematic.Vector{X: 10, Y: 20}}
	a := MoveBy(p, 0, 100, 1)

	_, done := a.Update(0.25)
	assert.False(t, done)
	assert.InDelta(t, 45, p.pos.Y, 1e-3)
	assert.Equal(t, 10.0, p.pos.X)

	_, done = a.Update(0.5)
	assert.False(t, done)
	assert.InDelta(t, 95, p.pos.Y, 1e-3)

	remaining, done := a.Update(0.5)
	assert.True(t, done)
	assert.InDelta(t, 0.25, remaining, 1e-9)
	assert.InDelta(t, 120.0, p.pos.Y, 1e-9, "lands on the target")
}

func TestMoveBy_IsRelative(t *testing.T) {
	p := &point{}
	a := MoveBy(p, 100, 0, 1)

	a.Update(0.5)
	// something else moves the target half way through
	p.pos.X += 1000
	a.Update(0.5)

	assert.InDelta(t, 1100, p.pos.X, 1e-3)
}

func TestMoveBy_ZeroDuration(t *testing.T) {
	p := &point{}
	remaining, done := MoveBy(p, 5, 5, 0).Update(0.1)
	assert.True(t, done)
	assert.Equal(t, 0.1, remaining)
	assert.Equal(t, kinematic.Vector{X: 5, Y: 5}, p.pos)
}

func TestWait(t *testing.T) {
	w := Wait(1.2)
	elapsed := 0
	for {
		elapsed++
		if _, done := w.Update(1.0 / 60); done {
			break
		}
		require.Less(t, elapsed, 100)
	}
	assert.Equal(t, 72, elapsed)

	w.Reset()
	_, done := w.Update(1)
	assert.False(t, done)
}

func TestSequence_CarriesLeftoverTime(t *testing.T) {
	var calls []string
	p := &point{}
	s := Sequence(
		Run(func() { calls = append(calls, "first") }),
		Wait(0.5),
		Run(func() { calls = append(calls, "second") }),
		MoveBy(p, 0, 10, 1),
	)

	_, done := s.Update(0.75)
	assert.False(t, done)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.InDelta(t, 2.5, p.pos.Y, 1e-3)

	remaining, done := s.Update(1)
	assert.True(t, done)
	assert.InDelta(t, 0.25, remaining, 1e-9)
	assert.Equal(t, 10.0, p.pos.Y)
}

func TestRepeatForever(t *testing.T) {
	count := 0
	a := RepeatForever(Sequence(Run(func() { count++ }), Wait(1.2)))

	a.Update(0.1)
	assert.Equal(t, 1, count, "runs immediately")

	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	assert.Equal(t, 1, count)

	a.Update(0.1)
	assert.Equal(t, 2, count, "runs again after 1.2s")

	// a large step catches up on every missed repetition
	_, done := a.Update(3.6)
	assert.False(t, done)
	assert.Equal(t, 5, count)
}

func TestRepeatForever_InstantActionRunsOncePerUpdate(t *testing.T) {
	count := 0
	a := RepeatForever(Run(func() { count++ }))
	a.Update(1)
	a.Update(0)
	assert.Equal(t, 2, count)
}

func TestRunner(t *testing.T) {
	r := NewRunner()
	count := 0
	spawner := r.Run(RepeatForever(Sequence(Run(func() { count++ }), Wait(1))))
	p := &point{}
	mover := r.Run(Sequence(MoveBy(p, 0, 10, 0.5), Run(func() { p.pos.X = -1 })))

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Running(spawner))
	assert.True(t, r.Running(mover))

	r.Update(0.5)
	assert.Equal(t, 1, count)
	assert.Equal(t, kinematic.Vector{X: -1, Y: 10}, p.pos)
	assert.False(t, r.Running(mover), "finished tasks are dropped")
	assert.Equal(t, 1, r.Len())

	assert.True(t, r.Cancel(spawner))
	assert.False(t, r.Cancel(spawner), "already cancelled")
	r.Update(5)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, r.Len())
}

func TestRunner_TasksStartedDuringUpdateRunNextUpdate(t *testing.T) {
	r := NewRunner()
	started := 0
	r.Run(Run(func() {
		r.Run(Run(func() { started++ }))
	}))

	r.Update(0.1)
	assert.Equal(t, 0, started)
	assert.Equal(t, 1, r.Len())

	r.Update(0.1)
	assert.Equal(t, 1, started)
}

func TestRunner_CancelDuringUpdate(t *testing.T) {
	r := NewRunner()
	ran := false
	var second Handle
	r.Run(Run(func() { r.Cancel(second) }))
	second = r.Run(Run(func() { ran = true }))

	r.Update(0.1)
	assert.False(t, ran)
}

func TestRunner_CancelAll(t *testing.T) {
	r := NewRunner()
	h1 := r.Run(Wait(1))
	h2 := r.Run(Wait(2))
	r.CancelAll()
	assert.False(t, r.Running(h1))
	assert.False(t, r.Running(h2))
	r.Update(0.1)
	assert.Equal(t, 0, r.Len())
}

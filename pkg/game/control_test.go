package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testMidX = 200.0

func TestHorizontalControl_Tap(t *testing.T) {
	tests := []struct {
		name        string
		x           float64
		before      float64
		wantTouch   float64
		wantImpulse float64
	}{
		{name: "right half", x: 300, before: 0, wantTouch: 400, wantImpulse: 200},
		{name: "midpoint counts as right", x: testMidX, before: 0, wantTouch: 400, wantImpulse: 200},
		{name: "left half", x: 10, before: 0, wantTouch: -400, wantImpulse: -200},
		{name: "right on top of existing velocity", x: 399, before: 123, wantTouch: 523, wantImpulse: 200},
		{name: "left on top of existing velocity", x: 0, before: 123, wantTouch: -277, wantImpulse: -200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &HorizontalControl{VelocityTouch: tt.before}
			c.Tap(tt.x, testMidX)
			assert.Equal(t, tt.wantTouch, c.VelocityTouch)
			assert.Equal(t, tt.wantImpulse, c.Impulse)
		})
	}
}

func TestHorizontalControl_ImpulseLastsOneFrame(t *testing.T) {
	c := &HorizontalControl{}
	c.Tap(300, testMidX)

	// rising: peak tracked, velocity loses a twentieth of itself
	assert.Equal(t, 580.0, c.Step(testMidX, testMidX))
	assert.Equal(t, 400.0, c.VelocityTouchLastFrame)
	assert.Equal(t, 380.0, c.VelocityTouch)
	assert.Equal(t, 0.0, c.Impulse)

	// falling: loses a twentieth of the peak
	assert.Equal(t, 360.0, c.Step(testMidX, testMidX))
	assert.Equal(t, 400.0, c.VelocityTouchLastFrame)
}

func TestHorizontalControl_DecayReachesZero(t *testing.T) {
	c := &HorizontalControl{}
	c.Tap(300, testMidX)
	for i := 0; i < 20; i++ {
		c.Step(testMidX, testMidX)
	}
	assert.InDelta(t, 0, c.VelocityTouch, 1e-9)

	// zero stays zero
	c.VelocityTouch = 0
	c.Step(testMidX, testMidX)
	assert.Equal(t, 0.0, c.VelocityTouch)
}

func TestHorizontalControl_NegativeDecayMirrorsPositive(t *testing.T) {
	c := &HorizontalControl{}
	c.Tap(0, testMidX)

	assert.Equal(t, -580.0, c.Step(testMidX, testMidX))
	assert.Equal(t, -400.0, c.VelocityTouchLastFrame)
	assert.Equal(t, -380.0, c.VelocityTouch)

	assert.Equal(t, -360.0, c.Step(testMidX, testMidX))
}

func TestHorizontalControl_TapWhileFallingRaisesPeak(t *testing.T) {
	c := &HorizontalControl{}
	c.Tap(300, testMidX)
	c.Step(testMidX, testMidX) // 380, peak 400
	c.Step(testMidX, testMidX) // 360

	c.Tap(300, testMidX) // 760
	c.Step(testMidX, testMidX)

	assert.Equal(t, 760.0, c.VelocityTouchLastFrame)
	assert.Equal(t, 722.0, c.VelocityTouch)

	c.Step(testMidX, testMidX)
	assert.Equal(t, 684.0, c.VelocityTouch)
}

func TestHorizontalControl_GravityIsClamped(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		want    float64
	}{
		{name: "centered", playerX: testMidX, want: 0},
		{name: "slightly right", playerX: testMidX + 10, want: -30},
		{name: "slightly left", playerX: testMidX - 10, want: 30},
		{name: "far right", playerX: testMidX + 1000, want: -400},
		{name: "far left", playerX: testMidX - 1000, want: 400},
		{name: "exactly at the limit", playerX: testMidX - 400.0/3, want: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &HorizontalControl{}
			got := c.Step(tt.playerX, testMidX)
			assert.InDelta(t, tt.want, c.VelocityGravity, 1e-9)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	c := &HorizontalControl{}
	for x := -2000.0; x <= 2000; x += 7.3 {
		c.Step(x, testMidX)
		assert.LessOrEqual(t, c.VelocityGravity, 400.0)
		assert.GreaterOrEqual(t, c.VelocityGravity, -400.0)
	}
}

func TestHorizontalControl_Reset(t *testing.T) {
	c := &HorizontalControl{}
	c.Tap(300, testMidX)
	c.Step(0, testMidX)
	c.Reset()
	assert.Equal(t, HorizontalControl{}, *c)
}

package game

import (
	"github.com/icarusgame/icarus/pkg/game/constants"
	"github.com/icarusgame/icarus/pkg/kinematic"
)

// HorizontalControl turns taps and the player's distance to the screen
// center into the player's horizontal velocity. All fields are signed
// velocity components and are recomputed every frame.
type HorizontalControl struct {
	VelocityTouch          float64
	VelocityTouchLastFrame float64
	VelocityGravity        float64
	Impulse                float64
	VelocityTotal          float64
}

// Tap applies a tap at x. Taps on the right half (including the midpoint)
// push right, taps on the left half push left.
func (c *HorizontalControl) Tap(x, midX float64) {
	if x >= midX {
		c.VelocityTouch += constants.TouchVelocity
		c.Impulse = constants.TouchImpulse
	} else {
		c.VelocityTouch -= constants.TouchVelocity
		c.Impulse = -constants.TouchImpulse
	}
}

// Step advances one frame and returns the horizontal velocity to apply to
// the player. The impulse only lasts for the frame it was tapped in.
func (c *HorizontalControl) Step(playerX, midX float64) float64 {
	c.decayTouch()

	c.VelocityGravity = kinematic.Clamp((midX-playerX)*constants.GravityMultiplier, -constants.GravityMaxVelocity, constants.GravityMaxVelocity)
	c.VelocityTotal = c.VelocityTouch + c.VelocityGravity + c.Impulse
	c.Impulse = 0
	return c.VelocityTotal
}

// decayTouch eases the touch velocity back to zero. While the velocity is
// still rising (a tap landed since the last peak) the peak is tracked and
// the velocity loses a twentieth of itself; once it is falling it loses a
// twentieth of the last peak each frame.
func (c *HorizontalControl) decayTouch() {
	if c.VelocityTouch > 0 {
		if c.VelocityTouch < c.VelocityTouchLastFrame {
			c.VelocityTouch -= c.VelocityTouchLastFrame / constants.TouchVelocityDivisor
		} else {
			c.VelocityTouchLastFrame = c.VelocityTouch
			c.VelocityTouch -= c.VelocityTouch / constants.TouchVelocityDivisor
		}
	} else if c.VelocityTouch < 0 {
		if c.VelocityTouch > c.VelocityTouchLastFrame {
			c.VelocityTouch -= c.VelocityTouchLastFrame / constants.TouchVelocityDivisor
		} else {
			c.VelocityTouchLastFrame = c.VelocityTouch
			c.VelocityTouch -= c.VelocityTouch / constants.TouchVelocityDivisor
		}
	}
}

// Reset zeroes every component.
func (c *HorizontalControl) Reset() {
	*c = HorizontalControl{}
}

package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	// no acceleration is plain v*t, which is how bodies move in a zero gravity world
	assert.InDelta(t, 200.0/60, Displacement(200, 1.0/60, 0), 1e-12)
	assert.InDelta(t, 12.5, Displacement(0, 5, 1), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 400.0, Clamp(1000, -400, 400))
	assert.Equal(t, -400.0, Clamp(-1000, -400, 400))
	assert.Equal(t, 12.0, Clamp(12, -400, 400))
}

func TestVector(t *testing.T) {
	v := Vector{X: 1, Y: 2}.Add(Vector{X: 3, Y: 4}).Scale(2)
	assert.Equal(t, Vector{X: 8, Y: 12}, v)
}

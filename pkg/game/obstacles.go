package game

import (
	"github.com/icarusgame/icarus/pkg/game/constants"
	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/icarusgame/icarus/pkg/log"
)

// Rand is the source of randomness for the obstacle split. *rand.Rand
// satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Rect is an axis aligned rectangle described by its center.
type Rect struct {
	Center kinematic.Vector
	Size   kinematic.Vector
}

// ObstacleLayout is the geometry of one obstacle pair and its score box at
// spawn time.
type ObstacleLayout struct {
	LeftWidth  float64
	RightWidth float64
	Gap        float64

	Left     Rect
	Right    Rect
	ScoreBox Rect

	// Clamped reports that the random draw left no room for the right
	// obstacle and the left width was reduced.
	Clamped bool
}

// LeftWidthRange returns the half open range [min, max) of the random left
// obstacle width for a screen of the given width. The upper bound is
// 2*width + width/3 itself, not width added on top of it, so the right width
// only goes negative on screens narrower than 375 points.
func LeftWidthRange(screenWidth float64) (int, int) {
	width := int(screenWidth) / constants.ObstacleWidthDivisor
	return width, 2*width + width/3
}

// NewObstacleLayout draws a random split of the screen into a left
// obstacle, the gap and a right obstacle. All rectangles are centered on
// y = top.
func NewObstacleLayout(screenWidth, top float64, rng Rand) ObstacleLayout {
	min, max := LeftWidthRange(screenWidth)
	gap := constants.ObstacleGap

	leftWidth := float64(min)
	if max > min {
		leftWidth = float64(min + rng.Intn(max-min))
	}

	clamped := false
	if rightWidth := screenWidth - leftWidth - gap; rightWidth < 0 {
		log.Warn("Obstacle split left no room on the right (left %0.f, right %0.f), clamping", leftWidth, rightWidth)
		leftWidth = screenWidth - gap
		if leftWidth < 0 {
			leftWidth = 0
		}
		clamped = true
	}
	rightWidth := screenWidth - leftWidth - gap

	height := constants.ObstacleHeight
	return ObstacleLayout{
		LeftWidth:  leftWidth,
		RightWidth: rightWidth,
		Gap:        gap,
		Left: Rect{
			Center: kinematic.Vector{X: leftWidth / 2, Y: top},
			Size:   kinematic.Vector{X: leftWidth, Y: height},
		},
		Right: Rect{
			Center: kinematic.Vector{X: leftWidth + gap + rightWidth/2, Y: top},
			Size:   kinematic.Vector{X: rightWidth, Y: height},
		},
		ScoreBox: Rect{
			Center: kinematic.Vector{X: leftWidth + gap/2, Y: top},
			Size:   kinematic.Vector{X: gap, Y: height},
		},
		Clamped: clamped,
	}
}

// ScrollDistance is how far an obstacle pair travels before it is removed.
func ScrollDistance(screenHeight float64) float64 {
	return screenHeight + 2*constants.ObstacleHeight
}

// ScrollDuration is the time it takes to travel distance at the scroll rate.
func ScrollDuration(distance float64) float64 {
	return constants.ScrollSecondsPerUnit * distance
}

package types

import "github.com/icarusgame/icarus/pkg/kinematic"

type TouchPhase uint8

const (
	TouchPhaseBegan TouchPhase = iota
	TouchPhaseMoved
	TouchPhaseEnded
	TouchPhaseCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchPhaseBegan:
		return "began"
	case TouchPhaseMoved:
		return "moved"
	case TouchPhaseEnded:
		return "ended"
	case TouchPhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// TouchEvent is a single touch (or emulated mouse) event in screen coordinates.
type TouchEvent struct {
	ID       int
	Phase    TouchPhase
	Position kinematic.Vector
}

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
)

const (
	// MouseTouchID is the touch id reported for the left mouse button.
	MouseTouchID = -1
	// KeyboardTouchID is the touch id reported for arrow key taps.
	KeyboardTouchID = -2
)

// TouchTracker turns touches, the left mouse button and the arrow keys into
// touch events. Keyboard taps land on the left or right edge of the screen
// so they steer the same way a touch on that half does.
type TouchTracker struct {
	screenWidth  float64
	screenHeight float64
	last         map[int]kinematic.Vector
}

func NewTouchTracker(screenWidth, screenHeight float64) *TouchTracker {
	return &TouchTracker{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		last:         make(map[int]kinematic.Vector),
	}
}

// Poll returns the touch events of the current tick. It must be called
// from ebiten's Update.
func (t *TouchTracker) Poll() []types.TouchEvent {
	var events []types.TouchEvent

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, t.track(int(id), types.TouchPhaseBegan, x, y))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		if e, ok := t.moved(int(id), x, y); ok {
			events = append(events, e)
		}
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		events = append(events, t.release(int(id)))
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, t.track(MouseTouchID, types.TouchPhaseBegan, x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, t.release(MouseTouchID))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if e, ok := t.moved(MouseTouchID, x, y); ok {
			events = append(events, e)
		}
	}

	y = int(t.screenHeight / 2)
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		events = append(events, keyboardTap(0, y)...)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		events = append(events, keyboardTap(int(t.screenWidth)-1, y)...)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		events = append(events, keyboardTap(int(t.screenWidth/2), y)...)
	}

	return events
}

func (t *TouchTracker) track(id int, phase types.TouchPhase, x, y int) types.TouchEvent {
	pos := kinematic.Vector{X: float64(x), Y: float64(y)}
	t.last[id] = pos
	return types.TouchEvent{ID: id, Phase: phase, Position: pos}
}

func (t *TouchTracker) moved(id int, x, y int) (types.TouchEvent, bool) {
	pos := kinematic.Vector{X: float64(x), Y: float64(y)}
	last, ok := t.last[id]
	if !ok || last == pos {
		return types.TouchEvent{}, false
	}
	return t.track(id, types.TouchPhaseMoved, x, y), true
}

func (t *TouchTracker) release(id int) types.TouchEvent {
	pos := t.last[id]
	delete(t.last, id)
	return types.TouchEvent{ID: id, Phase: types.TouchPhaseEnded, Position: pos}
}

func keyboardTap(x, y int) []types.TouchEvent {
	pos := kinematic.Vector{X: float64(x), Y: float64(y)}
	return []types.TouchEvent{
		{ID: KeyboardTouchID, Phase: types.TouchPhaseBegan, Position: pos},
		{ID: KeyboardTouchID, Phase: types.TouchPhaseEnded, Position: pos},
	}
}

// IsNegativeJustPressed reports whether the back input was just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsDebugToggleJustPressed reports whether the debug overlay toggle was
// just pressed.
func IsDebugToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

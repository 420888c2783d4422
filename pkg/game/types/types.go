package types

// BodyKind classifies a physical body for contact handling.
type BodyKind uint8

const (
	BodyKindPlayer BodyKind = iota
	BodyKindObstacle
	BodyKindScoreBox
	BodyKindWall
)

func (k BodyKind) String() string {
	switch k {
	case BodyKindPlayer:
		return "player"
	case BodyKindObstacle:
		return "obstacle"
	case BodyKindScoreBox:
		return "scorebox"
	case BodyKindWall:
		return "wall"
	}
	return "unknown"
}

// Tag is the resolv tag used for bodies of this kind.
func (k BodyKind) Tag() string {
	return k.String()
}

// SceneMode is the current screen of the game scene.
type SceneMode int

const (
	SceneModeMenu SceneMode = iota
	SceneModePlaying
	// SceneModeFalling is the transition between a fatal collision and the
	// end of the score label animation. Taps are ignored.
	SceneModeFalling
	SceneModeGameOver
)

func (m SceneMode) String() string {
	switch m {
	case SceneModeMenu:
		return "Menu"
	case SceneModePlaying:
		return "Playing"
	case SceneModeFalling:
		return "Falling"
	case SceneModeGameOver:
		return "Game Over"
	}
	return "Unknown"
}

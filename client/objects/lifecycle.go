package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is implemented by scenes and objects. Init and Destroy are
// called when an object joins or leaves a tree and may be called more than
// once; Update runs once per tick and Draw once per frame.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

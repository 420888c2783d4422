package game

import (
	"math"

	"github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/solarlune/resolv"
)

const (
	// worldCellSize is the resolv cell size in screen units.
	worldCellSize = 16
	// worldMargin extends the collision space beyond the screen so bodies
	// spawning above the top edge or scrolling past the bottom edge stay
	// inside it.
	worldMargin = 16 * worldCellSize
)

// Body is a rectangular physical body. Static bodies are moved by the
// scene; dynamic bodies are moved by the world from their velocity.
type Body struct {
	Kind     types.BodyKind
	Dynamic  bool
	Velocity kinematic.Vector

	center kinematic.Vector
	size   kinematic.Vector
	object *resolv.Object
	world  *World
}

// NewBody creates a body centered on center. Negative sizes are treated as
// empty.
func NewBody(kind types.BodyKind, center, size kinematic.Vector, dynamic bool) *Body {
	size.X = math.Max(size.X, 0)
	size.Y = math.Max(size.Y, 0)
	b := &Body{
		Kind:    kind,
		Dynamic: dynamic,
		center:  center,
		size:    size,
	}
	b.object = resolv.NewObject(center.X-size.X/2+worldMargin, center.Y-size.Y/2+worldMargin, size.X, size.Y, kind.Tag())
	return b
}

func (b *Body) Center() kinematic.Vector {
	return b.center
}

func (b *Body) Size() kinematic.Vector {
	return b.size
}

// SetCenter moves the body and refreshes its collision cells.
func (b *Body) SetCenter(center kinematic.Vector) {
	b.center = center
	b.object.Position.X = center.X - b.size.X/2 + worldMargin
	b.object.Position.Y = center.Y - b.size.Y/2 + worldMargin
	if b.world != nil {
		b.object.Update()
	}
}

// InWorld reports whether the body is currently part of a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// Overlaps reports whether the interiors of b and o intersect.
func (b *Body) Overlaps(o *Body) bool {
	if b.size.X <= 0 || b.size.Y <= 0 || o.size.X <= 0 || o.size.Y <= 0 {
		return false
	}
	return b.center.X-b.size.X/2 < o.center.X+o.size.X/2 &&
		b.center.X+b.size.X/2 > o.center.X-o.size.X/2 &&
		b.center.Y-b.size.Y/2 < o.center.Y+o.size.Y/2 &&
		b.center.Y+b.size.Y/2 > o.center.Y-o.size.Y/2
}

// Contact is a newly begun contact between two bodies. A is always the
// dynamic body.
type Contact struct {
	A *Body
	B *Body
}

// Involves reports whether either body is of the given kind.
func (c Contact) Involves(kind types.BodyKind) bool {
	return c.A.Kind == kind || c.B.Kind == kind
}

// Other returns the body of the contact that is not b.
func (c Contact) Other(b *Body) *Body {
	if c.A == b {
		return c.B
	}
	return c.A
}

type contactKey struct {
	a *Body
	b *Body
}

// reportsContact lists the kind pairs whose contacts are delivered.
func reportsContact(a, b types.BodyKind) bool {
	if b == types.BodyKindPlayer {
		a, b = b, a
	}
	if a != types.BodyKindPlayer {
		return false
	}
	switch b {
	case types.BodyKindObstacle, types.BodyKindScoreBox, types.BodyKindWall:
		return true
	}
	return false
}

// World is a closed rectangular play area with no gravity. It moves
// dynamic bodies, keeps them inside the horizontal bounds, blocks them on
// walls and reports contacts once, when they begin.
type World struct {
	width  float64
	height float64

	space    *resolv.Space
	bodies   []*Body
	byObject map[*resolv.Object]*Body
	active   map[contactKey]struct{}
}

func NewWorld(width, height float64) *World {
	return &World{
		width:    width,
		height:   height,
		space:    resolv.NewSpace(int(width)+2*worldMargin, int(height)+2*worldMargin, worldCellSize, worldCellSize),
		byObject: make(map[*resolv.Object]*Body),
		active:   make(map[contactKey]struct{}),
	}
}

func (w *World) Width() float64 {
	return w.width
}

func (w *World) Height() float64 {
	return w.height
}

// Add adds bodies to the world. Bodies already in a world are ignored.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world != nil {
			continue
		}
		b.world = w
		w.bodies = append(w.bodies, b)
		w.byObject[b.object] = b
		w.space.Add(b.object)
	}
}

// Remove removes bodies from the world together with their active contacts.
func (w *World) Remove(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world != w {
			continue
		}
		w.space.Remove(b.object)
		delete(w.byObject, b.object)
		for i, other := range w.bodies {
			if other == b {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
		for key := range w.active {
			if key.a == b || key.b == b {
				delete(w.active, key)
			}
		}
		b.world = nil
	}
}

// RemoveAll empties the world.
func (w *World) RemoveAll() {
	w.Remove(append([]*Body(nil), w.bodies...)...)
}

// Bodies returns the bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step moves the dynamic bodies by their velocity over dt seconds and
// returns the contacts that began during this step, in detection order.
func (w *World) Step(dt float64) []Contact {
	touching := make(map[contactKey]struct{})
	var order []contactKey

	touch := func(a, b *Body) {
		if !reportsContact(a.Kind, b.Kind) {
			return
		}
		key := contactKey{a: a, b: b}
		if _, ok := touching[key]; ok {
			return
		}
		touching[key] = struct{}{}
		order = append(order, key)
	}

	for _, b := range append([]*Body(nil), w.bodies...) {
		if !b.Dynamic {
			continue
		}
		if wall := w.move(b, dt); wall != nil {
			touch(b, wall)
		}
	}

	for _, b := range w.bodies {
		if !b.Dynamic {
			continue
		}
		collision := b.object.Check(0, 0, types.BodyKindObstacle.Tag(), types.BodyKindScoreBox.Tag())
		if collision == nil {
			continue
		}
		for _, obj := range collision.Objects {
			other, ok := w.byObject[obj]
			if !ok || other == b {
				continue
			}
			if b.Overlaps(other) {
				touch(b, other)
			}
		}
	}

	var began []Contact
	for _, key := range order {
		if _, ok := w.active[key]; !ok {
			began = append(began, Contact{A: key.a, B: key.b})
		}
	}
	w.active = touching
	return began
}

// move advances a dynamic body and returns the wall it was stopped by, if
// any.
func (w *World) move(b *Body, dt float64) *Body {
	dx := kinematic.Displacement(b.Velocity.X, dt, 0)
	dy := kinematic.Displacement(b.Velocity.Y, dt, 0)

	var blockedBy *Body
	if dx != 0 {
		if collision := b.object.Check(dx, 0, types.BodyKindWall.Tag()); collision != nil {
			for _, obj := range collision.Objects {
				wall, ok := w.byObject[obj]
				if !ok {
					continue
				}
				contact := collision.ContactWithObject(obj).X
				if (dx > 0 && contact >= 0 && contact < dx) || (dx < 0 && contact <= 0 && contact > dx) {
					dx = contact
					blockedBy = wall
				}
			}
		}
	}

	center := b.center.Add(kinematic.Vector{X: dx, Y: dy})
	half := b.size.X / 2
	if center.X < half {
		center.X = half
		blockedBy = w.wallOnSide(-1)
	} else if center.X > w.width-half {
		center.X = w.width - half
		blockedBy = w.wallOnSide(1)
	}

	b.SetCenter(center)
	return blockedBy
}

// wallOnSide returns the wall body left of the screen center for side < 0
// and right of it for side > 0.
func (w *World) wallOnSide(side int) *Body {
	mid := w.width / 2
	for _, b := range w.bodies {
		if b.Kind != types.BodyKindWall {
			continue
		}
		if (side < 0 && b.center.X < mid) || (side > 0 && b.center.X > mid) {
			return b
		}
	}
	return nil
}

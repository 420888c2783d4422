package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/icarusgame/icarus/pkg/game"
	"github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
)

// SpriteObject is a rectangle drawn with a texture or a fill color and,
// optionally, backed by a physics body. A sprite with neither a texture nor
// a color is invisible.
type SpriteObject struct {
	*BaseObject

	center  kinematic.Vector
	size    kinematic.Vector
	color   color.Color
	texture *ebiten.Image

	body  *game.Body
	world *game.World
}

type NewSpriteObjectOpts struct {
	ZIndex  int
	Center  kinematic.Vector
	Size    kinematic.Vector
	Color   color.Color
	Texture *ebiten.Image

	// World, when set, gives the sprite a body of BodyKind that joins the
	// world on Init and leaves it on Destroy.
	World    *game.World
	BodyKind types.BodyKind
	Dynamic  bool
}

var _ GameObject = &SpriteObject{}

func NewSpriteObject(id string, opts NewSpriteObjectOpts) *SpriteObject {
	o := &SpriteObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		center:     opts.Center,
		size:       opts.Size,
		color:      opts.Color,
		texture:    opts.Texture,
		world:      opts.World,
	}
	if opts.World != nil {
		o.body = game.NewBody(opts.BodyKind, opts.Center, opts.Size, opts.Dynamic)
	}
	return o
}

func (o *SpriteObject) Init() error {
	if o.body != nil {
		o.world.Add(o.body)
	}
	return nil
}

func (o *SpriteObject) Destroy() error {
	if o.body != nil {
		o.world.Remove(o.body)
	}
	return nil
}

// Body returns the physics body of the sprite or nil.
func (o *SpriteObject) Body() *game.Body {
	return o.body
}

// Position returns the center of the sprite.
func (o *SpriteObject) Position() kinematic.Vector {
	if o.body != nil {
		return o.body.Center()
	}
	return o.center
}

// SetPosition moves the center of the sprite and its body.
func (o *SpriteObject) SetPosition(position kinematic.Vector) {
	o.center = position
	if o.body != nil {
		o.body.SetCenter(position)
	}
}

func (o *SpriteObject) Size() kinematic.Vector {
	return o.size
}

func (o *SpriteObject) Draw(screen *ebiten.Image) {
	if o.size.X <= 0 || o.size.Y <= 0 {
		return
	}
	center := o.Position()
	x := center.X - o.size.X/2
	y := center.Y - o.size.Y/2

	if o.texture != nil {
		bounds := o.texture.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(o.size.X/float64(bounds.Dx()), o.size.Y/float64(bounds.Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(o.texture, op)
		return
	}
	if o.color != nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(o.size.X), float32(o.size.Y), o.color, false)
	}
}

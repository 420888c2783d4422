package objects

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/client/actions"
	"github.com/icarusgame/icarus/pkg/game"
	"github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
)

var (
	obstacleColor = color.RGBA{R: 0xc4, G: 0x62, B: 0x2d, A: 0xff}
	scoreBoxColor = color.RGBA{G: 0xc0, A: 0x80}
)

// ObstaclePairObject groups the left obstacle, the right obstacle and the
// score box between them so they move as one.
type ObstaclePairObject struct {
	*BaseObject

	Left     *SpriteObject
	Right    *SpriteObject
	ScoreBox *SpriteObject

	// Task is the handle of the action scrolling the pair.
	Task actions.Handle

	offset kinematic.Vector
}

type NewObstaclePairObjectOpts struct {
	ZIndex       int
	Layout       game.ObstacleLayout
	World        *game.World
	LeftTexture  *ebiten.Image
	RightTexture *ebiten.Image
	// ShowScoreBox fills the score box so it can be seen.
	ShowScoreBox bool
}

var _ GameObject = &ObstaclePairObject{}
var _ actions.Positioner = &ObstaclePairObject{}

func NewObstaclePairObject(id string, opts NewObstaclePairObjectOpts) (*ObstaclePairObject, error) {
	o := &ObstaclePairObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
	}

	obstacle := func(rect game.Rect, texture *ebiten.Image) NewSpriteObjectOpts {
		spriteOpts := NewSpriteObjectOpts{
			Center:   rect.Center,
			Size:     rect.Size,
			Texture:  texture,
			World:    opts.World,
			BodyKind: types.BodyKindObstacle,
		}
		if texture == nil {
			spriteOpts.Color = obstacleColor
		}
		return spriteOpts
	}
	o.Left = NewSpriteObject(id+"-left", obstacle(opts.Layout.Left, opts.LeftTexture))
	o.Right = NewSpriteObject(id+"-right", obstacle(opts.Layout.Right, opts.RightTexture))

	scoreBox := NewSpriteObjectOpts{
		Center:   opts.Layout.ScoreBox.Center,
		Size:     opts.Layout.ScoreBox.Size,
		World:    opts.World,
		BodyKind: types.BodyKindScoreBox,
	}
	if opts.ShowScoreBox {
		scoreBox.Color = scoreBoxColor
	}
	o.ScoreBox = NewSpriteObject(id+"-scorebox", scoreBox)

	for _, child := range []*SpriteObject{o.Left, o.Right, o.ScoreBox} {
		if err := o.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add obstacle part: %v", err)
		}
	}
	return o, nil
}

// Position returns how far the pair has moved since it was created.
func (o *ObstaclePairObject) Position() kinematic.Vector {
	return o.offset
}

// SetPosition moves every part of the pair by the change in offset.
func (o *ObstaclePairObject) SetPosition(position kinematic.Vector) {
	delta := position.Add(o.offset.Scale(-1))
	o.offset = position
	for _, part := range []*SpriteObject{o.Left, o.Right, o.ScoreBox} {
		part.SetPosition(part.Position().Add(delta))
	}
}

// Bodies returns the bodies of the left obstacle, the right obstacle and
// the score box.
func (o *ObstaclePairObject) Bodies() []*game.Body {
	return []*game.Body{o.Left.Body(), o.Right.Body(), o.ScoreBox.Body()}
}

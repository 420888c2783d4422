package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/icarusgame/icarus/client/actions"
	"github.com/icarusgame/icarus/pkg/kinematic"
	"golang.org/x/image/font"
)

// LabelObject draws a line of text centered on its position.
type LabelObject struct {
	*BaseObject

	text     string
	face     font.Face
	color    color.Color
	position kinematic.Vector
}

type NewLabelObjectOpts struct {
	ZIndex   int
	Text     string
	Face     font.Face
	Color    color.Color
	Position kinematic.Vector
}

var _ GameObject = &LabelObject{}
var _ actions.Positioner = &LabelObject{}

func NewLabelObject(id string, opts NewLabelObjectOpts) *LabelObject {
	c := opts.Color
	if c == nil {
		c = color.White
	}
	return &LabelObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		face:       opts.Face,
		color:      c,
		position:   opts.Position,
	}
}

func (o *LabelObject) Text() string {
	return o.text
}

func (o *LabelObject) SetText(text string) {
	o.text = text
}

func (o *LabelObject) Position() kinematic.Vector {
	return o.position
}

func (o *LabelObject) SetPosition(position kinematic.Vector) {
	o.position = position
}

func (o *LabelObject) Draw(screen *ebiten.Image) {
	if o.text == "" || o.face == nil {
		return
	}
	bounds, _ := font.BoundString(o.face, o.text)
	width := float64((bounds.Max.X - bounds.Min.X).Ceil())
	height := float64((bounds.Max.Y - bounds.Min.Y).Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		o.position.X-width/2-float64(bounds.Min.X.Floor()),
		o.position.Y-height/2-float64(bounds.Min.Y.Floor()),
	)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, o.face, op)
}

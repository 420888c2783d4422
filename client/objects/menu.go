package objects

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/client/fonts"
)

// MenuObject is the overlay shown while the scene waits for the first tap.
type MenuObject struct {
	*BaseObject

	title  string
	prompt string
	ui     *ebitenui.UI
}

var _ GameObject = &MenuObject{}

func NewMenuObject(id string, zIndex int, title, prompt string) *MenuObject {
	return &MenuObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		title:      title,
		prompt:     prompt,
	}
}

func (o *MenuObject) Init() error {
	if o.ui != nil {
		return nil
	}
	o.renderUI()
	return nil
}

func (o *MenuObject) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(column)

	for _, line := range []struct {
		text  string
		color color.Color
	}{
		{text: o.title, color: color.NRGBA{R: 254, G: 255, B: 255, A: 255}},
		{text: o.prompt, color: color.NRGBA{R: 200, G: 200, B: 200, A: 255}},
	} {
		if line.text == "" {
			continue
		}
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(line.text, fonts.MenuFont, line.color),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *MenuObject) Update() error {
	if o.IsHidden() || o.ui == nil {
		return nil
	}
	o.ui.Update()
	return nil
}

func (o *MenuObject) Draw(screen *ebiten.Image) {
	if o.ui == nil {
		return
	}
	o.ui.Draw(screen)
}

package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	dpi = 72

	// ScoreFontSize is the point size of the in-game score label.
	ScoreFontSize = 200
	MenuFontSize  = 48
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

var ScoreFont font.Face
var MenuFont font.Face

func loadFonts() error {
	mono, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	ScoreFont, err = opentype.NewFace(mono, &opentype.FaceOptions{
		Size:    ScoreFontSize,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	MenuFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    MenuFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return nil
}

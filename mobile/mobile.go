// Package mobile binds the game for gomobile (ebitenmobile bind).
package mobile

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/icarusgame/icarus/client/game"
	"github.com/icarusgame/icarus/client/textures"
	"github.com/icarusgame/icarus/pkg/config"
	"github.com/icarusgame/icarus/pkg/log"
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	atlas := textures.Default()
	atlas.Preload(func(err error) {
		if err != nil {
			log.Error("Failed to preload textures: %v", err)
		}
	})

	g, err := game.NewGame(game.NewGameOptions{
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Textures: atlas,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	mobile.SetGame(g)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}

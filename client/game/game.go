package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/icarusgame/icarus/client/input"
	"github.com/icarusgame/icarus/client/scenes"
	"github.com/icarusgame/icarus/pkg/config"
	gamepkg "github.com/icarusgame/icarus/pkg/game"
	gametypes "github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/log"
	"github.com/icarusgame/icarus/pkg/queue"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// screenWidth and screenHeight are the logical screen size.
	screenWidth  int
	screenHeight int
	// touches carries the input of a tick to the scene.
	touches *queue.InMemoryQueue[gametypes.TouchEvent]
	// exitRequested, debugToggled and pollTouches read the input of a tick.
	exitRequested func() bool
	debugToggled  func() bool
	pollTouches   func() []gametypes.TouchEvent
	// scene is the game scene.
	scene *scenes.GameScene
}

type NewGameOptions struct {
	Config   config.Config
	Rand     gamepkg.Rand
	Textures scenes.TextureSource
}

func NewGame(opts NewGameOptions) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	tracker := input.NewTouchTracker(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	g := &Game{
		debug:         cfg.Debug,
		screenWidth:   cfg.ScreenWidth,
		screenHeight:  cfg.ScreenHeight,
		touches:       queue.NewInMemoryQueue[gametypes.TouchEvent](queue.QueueBufferSize),
		exitRequested: input.IsNegativeJustPressed,
		debugToggled:  input.IsDebugToggleJustPressed,
		pollTouches:   tracker.Poll,
	}

	scene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Width:    float64(cfg.ScreenWidth),
		Height:   float64(cfg.ScreenHeight),
		TPS:      cfg.TPS,
		Rand:     opts.Rand,
		Textures: opts.Textures,
		Touches:  g.touches,
		Debug:    cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return nil, fmt.Errorf("failed to set game scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene *scenes.GameScene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return err
		}
		return fmt.Errorf("failed to handle input: %w", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %w", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	if g.exitRequested() {
		log.Info("Exit requested")
		return ebiten.Termination
	}
	if g.debugToggled() {
		g.debug = !g.debug
	}

	for _, e := range g.pollTouches() {
		if err := g.touches.Enqueue(e); err != nil {
			log.Warn("Dropping touch %d %s: %v", e.ID, e.Phase, err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.scene.Mode()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Score: %d", g.scene.Score()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Bodies: %d", len(g.scene.World().Bodies())))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Tasks: %d", g.scene.Tasks()))
	if player := g.scene.Player(); player != nil {
		control := g.scene.Control()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Velocity: %0.1f (touch %0.1f, gravity %0.1f)", control.VelocityTotal, control.VelocityTouch, control.VelocityGravity))
	}
}

// Scene returns the game scene.
func (g *Game) Scene() *scenes.GameScene {
	return g.scene
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

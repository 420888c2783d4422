package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/client/actions"
	"github.com/icarusgame/icarus/client/fonts"
	"github.com/icarusgame/icarus/client/objects"
	"github.com/icarusgame/icarus/client/textures"
	"github.com/icarusgame/icarus/pkg/config"
	"github.com/icarusgame/icarus/pkg/game"
	"github.com/icarusgame/icarus/pkg/game/constants"
	"github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/icarusgame/icarus/pkg/log"
	"github.com/icarusgame/icarus/pkg/queue"
)

const (
	zIndexWalls     = 0
	zIndexObstacles = 10
	zIndexPlayer    = 20
	zIndexScore     = 30
	zIndexMenu      = 40

	playerID     = "player"
	leftWallID   = "wall-left"
	rightWallID  = "wall-right"
	obstaclesID  = "obstacles"
	scoreLabelID = "score"
	menuID       = "menu"

	menuTitle  = "ICARUS"
	menuPrompt = "TAP TO PLAY"
)

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x1d, B: 0x2b, A: 0xff}
	playerColor     = color.RGBA{R: 0xe0, G: 0x2a, B: 0x2a, A: 0xff}
)

// TextureSource provides textures by name.
type TextureSource interface {
	Texture(name string) (*ebiten.Image, error)
}

type GameSceneOptions struct {
	// Width and Height are the scene size in points.
	Width  float64
	Height float64
	// TPS is the number of updates per second. Every update advances the
	// scene by 1/TPS seconds.
	TPS int
	// Rand drives obstacle placement. Defaults to a clock seeded source.
	Rand game.Rand
	// Textures, when set, provides the obstacle textures. Obstacles are
	// filled with a flat color otherwise.
	Textures TextureSource
	// Touches, when set, is drained at the start of every update.
	Touches queue.Queue[types.TouchEvent]
	// Debug shows the score triggers.
	Debug bool
}

// GameScene is the whole game: a player square steered by taps through the
// gaps of obstacle pairs scrolling down the screen.
type GameScene struct {
	*BaseScene

	width    float64
	height   float64
	dt       float64
	debug    bool
	rng      game.Rand
	textures TextureSource
	touches  queue.Queue[types.TouchEvent]

	world   *game.World
	runner  *actions.Runner
	control game.HorizontalControl

	mode  types.SceneMode
	score int

	player     *objects.SpriteObject
	obstacles  *objects.BaseObject
	scoreLabel *objects.LabelObject
	menu       *objects.MenuObject

	leftTexture  *ebiten.Image
	rightTexture *ebiten.Image

	spawnTask actions.Handle
	labelTask actions.Handle

	// err holds the first error raised by a scheduled action.
	err error
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Width < float64(constants.MinScreenWidth) {
		return nil, fmt.Errorf("scene width %0.f is below the minimum of %d", opts.Width, constants.MinScreenWidth)
	}
	if opts.Height <= 0 {
		return nil, fmt.Errorf("scene height must be positive, got %0.f", opts.Height)
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		width:     opts.Width,
		height:    opts.Height,
		dt:        1 / float64(tps),
		debug:     opts.Debug,
		rng:       rng,
		textures:  opts.Textures,
		touches:   opts.Touches,
		world:     game.NewWorld(opts.Width, opts.Height),
		runner:    actions.NewRunner(),
		mode:      types.SceneModeMenu,
	}
	s.scoreLabel = objects.NewLabelObject(scoreLabelID, objects.NewLabelObjectOpts{
		ZIndex: zIndexScore,
		Face:   fonts.ScoreFont,
		Color:  color.White,
	})
	s.menu = objects.NewMenuObject(menuID, zIndexMenu, menuTitle, menuPrompt)
	return s, nil
}

func (s *GameScene) Init() error {
	if s.textures != nil {
		var err error
		if s.leftTexture, err = s.textures.Texture(textures.ObstacleLeftLevel1); err != nil {
			return fmt.Errorf("failed to get left obstacle texture: %v", err)
		}
		if s.rightTexture, err = s.textures.Texture(textures.ObstacleRightLevel1); err != nil {
			return fmt.Errorf("failed to get right obstacle texture: %v", err)
		}
	}
	if err := s.SetScene(); err != nil {
		return fmt.Errorf("failed to set scene: %v", err)
	}
	return s.BaseScene.Init()
}

func (s *GameScene) Destroy() error {
	s.runner.CancelAll()
	if err := s.BaseScene.Destroy(); err != nil {
		return err
	}
	s.world.RemoveAll()
	return nil
}

// SetScene adds the walls, the player and the menu overlay to an empty
// scene.
func (s *GameScene) SetScene() error {
	root := s.GetRoot()
	if len(root.GetChildren()) > 0 {
		return fmt.Errorf("scene is not empty")
	}

	wall := func(id string, x float64) *objects.SpriteObject {
		return objects.NewSpriteObject(id, objects.NewSpriteObjectOpts{
			ZIndex:   zIndexWalls,
			Center:   kinematic.Vector{X: x, Y: s.height / 2},
			Size:     kinematic.Vector{X: constants.WallWidth, Y: s.height},
			World:    s.world,
			BodyKind: types.BodyKindWall,
		})
	}
	if err := root.AddChild(leftWallID, wall(leftWallID, -constants.WallWidth/2)); err != nil {
		return fmt.Errorf("failed to add left wall: %v", err)
	}
	if err := root.AddChild(rightWallID, wall(rightWallID, s.width+constants.WallWidth/2)); err != nil {
		return fmt.Errorf("failed to add right wall: %v", err)
	}

	s.player = objects.NewSpriteObject(playerID, objects.NewSpriteObjectOpts{
		ZIndex:   zIndexPlayer,
		Center:   kinematic.Vector{X: s.width / 2, Y: s.height * 3 / 4},
		Size:     kinematic.Vector{X: constants.PlayerWidth, Y: constants.PlayerHeight},
		Color:    playerColor,
		World:    s.world,
		BodyKind: types.BodyKindPlayer,
		Dynamic:  true,
	})
	if err := root.AddChild(playerID, s.player); err != nil {
		return fmt.Errorf("failed to add player: %v", err)
	}

	s.menu.SetHidden(false)
	if err := root.AddChild(menuID, s.menu); err != nil {
		return fmt.Errorf("failed to add menu: %v", err)
	}
	return nil
}

// HandleTouches dispatches a batch of touch events. Only began touches
// change the game.
func (s *GameScene) HandleTouches(events []types.TouchEvent) error {
	var began []types.TouchEvent
	for _, e := range events {
		if e.Phase == types.TouchPhaseBegan {
			began = append(began, e)
			continue
		}
		log.Trace("Touch %d %s at (%0.f, %0.f)", e.ID, e.Phase, e.Position.X, e.Position.Y)
	}
	if len(began) == 0 {
		return nil
	}
	return s.TouchesBegan(began)
}

// TouchesBegan reacts to every new touch in turn, so a multi touch tap on
// the menu both starts the round and steers.
func (s *GameScene) TouchesBegan(touches []types.TouchEvent) error {
	for _, touch := range touches {
		switch s.mode {
		case types.SceneModeMenu:
			if err := s.startRound(); err != nil {
				return fmt.Errorf("failed to start round: %v", err)
			}
		case types.SceneModePlaying:
			s.control.Tap(touch.Position.X, s.width/2)
		case types.SceneModeFalling:
			log.Trace("Ignoring touch while the score label falls")
		case types.SceneModeGameOver:
			if err := s.resetToMenu(); err != nil {
				return fmt.Errorf("failed to reset to menu: %v", err)
			}
		}
	}
	return nil
}

func (s *GameScene) startRound() error {
	s.mode = types.SceneModePlaying
	s.menu.SetHidden(true)

	s.scoreLabel.SetText(strconv.Itoa(s.score))
	s.scoreLabel.SetPosition(kinematic.Vector{X: s.width / 2, Y: s.height / 8})
	if err := s.GetRoot().AddChild(scoreLabelID, s.scoreLabel); err != nil {
		return fmt.Errorf("failed to add score label: %v", err)
	}

	s.obstacles = objects.NewBaseObject(obstaclesID, &objects.NewBaseObjectOpts{ZIndex: zIndexObstacles})
	if err := s.GetRoot().AddChild(obstaclesID, s.obstacles); err != nil {
		return fmt.Errorf("failed to add obstacles: %v", err)
	}
	s.spawnTask = s.runner.Run(actions.RepeatForever(actions.Sequence(
		actions.Run(func() {
			if err := s.SpawnOneSetOfObstacles(); err != nil {
				s.fail(fmt.Errorf("failed to spawn obstacles: %v", err))
			}
		}),
		actions.Wait(constants.SpawnInterval),
	)))

	log.Info("Round started")
	return nil
}

// SpawnOneSetOfObstacles adds an obstacle pair at the top of the screen and
// scrolls it down until it has left the screen, where it is removed.
func (s *GameScene) SpawnOneSetOfObstacles() error {
	if s.obstacles == nil {
		return fmt.Errorf("obstacles are not in the scene")
	}

	layout := game.NewObstacleLayout(s.width, 0, s.rng)
	id := fmt.Sprintf("%s-%s", obstaclesID, uuid.New().String())
	pair, err := objects.NewObstaclePairObject(id, objects.NewObstaclePairObjectOpts{
		Layout:       layout,
		World:        s.world,
		LeftTexture:  s.leftTexture,
		RightTexture: s.rightTexture,
		ShowScoreBox: s.debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create obstacle pair: %v", err)
	}
	if err := s.obstacles.AddChild(id, pair); err != nil {
		return fmt.Errorf("failed to add obstacle pair: %v", err)
	}

	distance := game.ScrollDistance(s.height)
	pair.Task = s.runner.Run(actions.Sequence(
		actions.MoveBy(pair, 0, distance, game.ScrollDuration(distance)),
		actions.Run(func() { s.removeObstaclePair(pair) }),
	))

	log.Debug("Spawned obstacle pair %s: left %0.f, gap %0.f, right %0.f", id, layout.LeftWidth, layout.Gap, layout.RightWidth)
	return nil
}

func (s *GameScene) removeObstaclePair(pair *objects.ObstaclePairObject) {
	s.runner.Cancel(pair.Task)
	if s.obstacles == nil || s.obstacles.GetChild(pair.GetID()) == nil {
		return
	}
	if err := s.obstacles.RemoveChild(pair.GetID()); err != nil {
		s.fail(fmt.Errorf("failed to remove obstacle pair: %v", err))
	}
}

// DidBegin handles a contact between the player and another body.
func (s *GameScene) DidBegin(contact game.Contact) error {
	if contact.Involves(types.BodyKindPlayer) && contact.Involves(types.BodyKindWall) {
		if s.player != nil {
			s.player.Body().Velocity = kinematic.Vector{}
		}
	}

	if s.mode != types.SceneModePlaying {
		return nil
	}

	if contact.Involves(types.BodyKindScoreBox) {
		s.score++
		s.scoreLabel.SetText(strconv.Itoa(s.score))
		log.Debug("Score %d", s.score)
	}

	if contact.Involves(types.BodyKindObstacle) {
		if err := s.gameOver(); err != nil {
			return fmt.Errorf("failed to end round: %v", err)
		}
	}
	return nil
}

func (s *GameScene) gameOver() error {
	s.runner.Cancel(s.spawnTask)
	if s.obstacles != nil {
		for _, child := range s.obstacles.GetChildren() {
			if pair, ok := child.(*objects.ObstaclePairObject); ok {
				s.runner.Cancel(pair.Task)
			}
		}
		if err := s.GetRoot().RemoveChild(obstaclesID); err != nil {
			return fmt.Errorf("failed to remove obstacles: %v", err)
		}
		s.obstacles = nil
	}
	if s.player != nil {
		if err := s.GetRoot().RemoveChild(playerID); err != nil {
			return fmt.Errorf("failed to remove player: %v", err)
		}
		s.player = nil
	}

	distance := s.height/2 - s.scoreLabel.Position().Y
	s.labelTask = s.runner.Run(actions.Sequence(
		actions.MoveBy(s.scoreLabel, 0, distance, game.ScrollDuration(distance)),
		actions.Run(func() {
			s.mode = types.SceneModeGameOver
			log.Debug("Game over screen")
		}),
	))
	s.mode = types.SceneModeFalling

	log.Info("Game over with score %d", s.score)
	return nil
}

func (s *GameScene) resetToMenu() error {
	s.score = 0
	s.runner.Cancel(s.labelTask)
	s.runner.CancelAll()
	if err := s.GetRoot().RemoveChildren(); err != nil {
		return fmt.Errorf("failed to clear scene: %v", err)
	}
	s.world.RemoveAll()
	s.obstacles = nil
	s.player = nil
	s.control.Reset()

	if err := s.SetScene(); err != nil {
		return err
	}
	s.mode = types.SceneModeMenu
	return nil
}

// Step advances the game by dt seconds: queued touches, player control,
// scheduled actions, physics and contacts, in that order.
func (s *GameScene) Step(dt float64) error {
	if s.touches != nil {
		if err := s.HandleTouches(s.touches.ReadAllMessages()); err != nil {
			return err
		}
	}

	if s.player != nil {
		vx := s.control.Step(s.player.Position().X, s.width/2)
		s.player.Body().Velocity = kinematic.Vector{X: vx, Y: 0}
	}

	s.runner.Update(dt)
	if err := s.takeErr(); err != nil {
		return err
	}

	for _, contact := range s.world.Step(dt) {
		if err := s.DidBegin(contact); err != nil {
			return err
		}
	}
	return nil
}

func (s *GameScene) fail(err error) {
	log.Error("%v", err)
	if s.err == nil {
		s.err = err
	}
}

func (s *GameScene) takeErr() error {
	err := s.err
	s.err = nil
	return err
}

func (s *GameScene) Update() error {
	if err := s.Step(s.dt); err != nil {
		return err
	}
	return s.BaseScene.Update()
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.BaseScene.Draw(screen)
}

func (s *GameScene) Mode() types.SceneMode {
	return s.mode
}

func (s *GameScene) Score() int {
	return s.score
}

func (s *GameScene) ScoreLabel() *objects.LabelObject {
	return s.scoreLabel
}

// Player returns the player sprite, or nil while there is none.
func (s *GameScene) Player() *objects.SpriteObject {
	return s.player
}

// Control returns the horizontal control state of the player.
func (s *GameScene) Control() *game.HorizontalControl {
	return &s.control
}

// ObstaclePairs returns the obstacle pairs currently in the scene.
func (s *GameScene) ObstaclePairs() []*objects.ObstaclePairObject {
	if s.obstacles == nil {
		return nil
	}
	var pairs []*objects.ObstaclePairObject
	for _, child := range s.obstacles.GetChildren() {
		if pair, ok := child.(*objects.ObstaclePairObject); ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func (s *GameScene) World() *game.World {
	return s.world
}

// Tasks returns the number of scheduled actions.
func (s *GameScene) Tasks() int {
	return s.runner.Len()
}

func (s *GameScene) Width() float64 {
	return s.width
}

func (s *GameScene) Height() float64 {
	return s.height
}

package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/pkg/config"
	gametypes "github.com/icarusgame/icarus/pkg/game/types"
	"github.com/icarusgame/icarus/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	g, err := NewGame(NewGameOptions{Config: cfg, Rand: zeroRand{}})
	require.NoError(t, err)

	w, h := g.Layout(100, 100)
	assert.Equal(t, cfg.ScreenWidth, w)
	assert.Equal(t, cfg.ScreenHeight, h)
	assert.Equal(t, gametypes.SceneModeMenu, g.Scene().Mode())
	assert.Equal(t, float64(cfg.ScreenWidth), g.Scene().Width())
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ScreenWidth = 10
	_, err := NewGame(NewGameOptions{Config: cfg})
	assert.Error(t, err)
}

func TestGame_QueuedTouchesReachScene(t *testing.T) {
	g, err := NewGame(NewGameOptions{Config: config.Default(), Rand: zeroRand{}})
	require.NoError(t, err)

	require.NoError(t, g.touches.Enqueue(gametypes.TouchEvent{
		Phase:    gametypes.TouchPhaseBegan,
		Position: kinematic.Vector{X: 100, Y: 100},
	}))
	require.NoError(t, g.Scene().Step(1.0/60))

	assert.Equal(t, gametypes.SceneModePlaying, g.Scene().Mode())
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(NewGameOptions{Config: config.Default(), Rand: zeroRand{}})
	require.NoError(t, err)
	g.exitRequested = func() bool { return false }
	g.debugToggled = func() bool { return false }
	g.pollTouches = func() []gametypes.TouchEvent { return nil }
	return g
}

func TestGame_UpdateEndsOnExitRequest(t *testing.T) {
	g := newTestGame(t)
	g.exitRequested = func() bool { return true }
	g.pollTouches = func() []gametypes.TouchEvent {
		t.Fatal("input is not polled after an exit request")
		return nil
	}

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, ebiten.Termination, err, "termination reaches ebiten unwrapped")
	assert.Equal(t, gametypes.SceneModeMenu, g.Scene().Mode())
}

func TestGame_HandleInputTogglesDebug(t *testing.T) {
	g := newTestGame(t)
	require.False(t, g.debug)

	g.debugToggled = func() bool { return true }
	require.NoError(t, g.handleInput())
	assert.True(t, g.debug)

	require.NoError(t, g.handleInput())
	assert.False(t, g.debug)
}

func TestGame_HandleInputQueuesPolledTouches(t *testing.T) {
	g := newTestGame(t)
	g.pollTouches = func() []gametypes.TouchEvent {
		return []gametypes.TouchEvent{
			{ID: 1, Phase: gametypes.TouchPhaseBegan, Position: kinematic.Vector{X: 10, Y: 10}},
			{ID: 1, Phase: gametypes.TouchPhaseEnded, Position: kinematic.Vector{X: 10, Y: 10}},
		}
	}

	require.NoError(t, g.handleInput())
	assert.Equal(t, 2, g.touches.Size())

	require.NoError(t, g.Scene().Step(1.0/60))
	assert.Equal(t, gametypes.SceneModePlaying, g.Scene().Mode())
	assert.Equal(t, 0, g.touches.Size())
}

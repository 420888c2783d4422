package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/icarusgame/icarus/client/game"
	"github.com/icarusgame/icarus/client/textures"
	"github.com/icarusgame/icarus/pkg/config"
	"github.com/icarusgame/icarus/pkg/log"
	"github.com/icarusgame/icarus/pkg/version"
)

const (
	// windowScale shrinks the portrait scene to fit a desktop display.
	windowScale = 0.5
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to an optional .env file")
	logLevel := flag.String("log-level", "", "Log level (overrides "+config.EnvLogLevel+")")
	width := flag.Int("width", 0, "Screen width in points (overrides "+config.EnvScreenWidth+")")
	height := flag.Int("height", 0, "Screen height in points (overrides "+config.EnvScreenHeight+")")
	tps := flag.Int("tps", 0, "Ticks per second (overrides "+config.EnvTPS+")")
	debug := flag.Bool("debug", false, "Show debug overlay and score triggers")
	seed := flag.Int64("seed", 0, "Seed for obstacle placement, 0 seeds from the clock")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "width":
			cfg.ScreenWidth = *width
		case "height":
			cfg.ScreenHeight = *height
		case "tps":
			cfg.TPS = *tps
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	atlas := textures.Default()
	atlas.Preload(func(err error) {
		if err != nil {
			log.Error("Failed to preload textures: %v", err)
			return
		}
		log.Info("Preloaded texture atlas %s", atlas.Name())
	})

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Debug("Obstacle seed %d", cfg.Seed)

	g, err := game.NewGame(game.NewGameOptions{
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Textures: atlas,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(float64(cfg.ScreenWidth)*windowScale), int(float64(cfg.ScreenHeight)*windowScale))
	ebiten.SetWindowTitle("Icarus")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/icarusgame/icarus/pkg/game/constants"
	"github.com/joho/godotenv"
)

const (
	DefaultScreenWidth  = 750
	DefaultScreenHeight = 1334
	DefaultTPS          = 60
	DefaultLogLevel     = "info"

	EnvScreenWidth  = "ICARUS_SCREEN_WIDTH"
	EnvScreenHeight = "ICARUS_SCREEN_HEIGHT"
	EnvTPS          = "ICARUS_TPS"
	EnvLogLevel     = "ICARUS_LOG_LEVEL"
	EnvDebug        = "ICARUS_DEBUG"
	EnvSeed         = "ICARUS_SEED"
)

// Config holds the client settings.
type Config struct {
	// ScreenWidth and ScreenHeight are the logical scene size in points.
	ScreenWidth  int
	ScreenHeight int
	// TPS is the number of fixed updates per second.
	TPS      int
	LogLevel string
	// Debug draws the score triggers and the debug overlay.
	Debug bool
	// Seed seeds obstacle placement. Zero seeds from the clock.
	Seed int64
}

func Default() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		TPS:          DefaultTPS,
		LogLevel:     DefaultLogLevel,
	}
}

// Load returns the defaults overridden by the given .env files and then by
// ICARUS_* environment variables. Missing .env files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %v", f, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.ScreenWidth, err = envInt(EnvScreenWidth, cfg.ScreenWidth); err != nil {
		return Config{}, err
	}
	if cfg.ScreenHeight, err = envInt(EnvScreenHeight, cfg.ScreenHeight); err != nil {
		return Config{}, err
	}
	if cfg.TPS, err = envInt(EnvTPS, cfg.TPS); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvDebug, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvSeed, err)
		}
	}
	return cfg, nil
}

func envInt(name string, fallback int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return i, nil
}

// Validate checks that the scene can hold the player and an obstacle gap.
func (c Config) Validate() error {
	if c.ScreenWidth < constants.MinScreenWidth {
		return fmt.Errorf("screen width %d is below the minimum of %d", c.ScreenWidth, constants.MinScreenWidth)
	}
	if float64(c.ScreenHeight) < constants.PlayerHeight*2 {
		return fmt.Errorf("screen height %d is too small", c.ScreenHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

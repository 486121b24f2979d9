package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// EnvPrefix is prepended to every environment override, e.g. PONG_TICK_RATE.
const EnvPrefix = "PONG_"

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// LoadPong loads the pong configuration, applies environment overrides and validates it.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := readPong(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultPongConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Both are optional; unreadable ones fall through.
	for _, path := range []string{userConfigPath("pong.yaml"), filepath.Join("configs", "pong.yaml")} {
		if path == "" {
			continue
		}
		cfg := DefaultPongConfig()
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

// ApplyEnv overrides fields from PONG_* environment variables.
func ApplyEnv(cfg *PongConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration can drive a simulation.
func (c PongConfig) Validate() error {
	if c.Field.Width < pong.MinFieldWidth || c.Field.Height < pong.MinFieldHeight {
		return invalidf("field %dx%d is smaller than %dx%d",
			c.Field.Width, c.Field.Height, pong.MinFieldWidth, pong.MinFieldHeight)
	}
	// Ticks drive both the simulation and the redraw
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return invalidf("tick_rate %d out of range 1..1000", c.TickRate)
	}
	switch c.Random {
	case RandomLFSR32, RandomLFSR16:
	default:
		return invalidf("random: unknown generator %q", c.Random)
	}
	players := []struct{ name, kind string }{
		{"player1", c.Controls.Player1},
		{"player2", c.Controls.Player2},
	}
	for _, p := range players {
		switch p.kind {
		case ControlKeys, ControlWheel, ControlCPU:
		default:
			return invalidf("controls.%s: unknown control %q", p.name, p.kind)
		}
	}
	if c.Controls.Acceleration <= 0 {
		return invalidf("controls.acceleration must be positive, got %v", c.Controls.Acceleration)
	}
	if c.Controls.HoldTicks <= 0 {
		return invalidf("controls.hold_ticks must be positive, got %d", c.Controls.HoldTicks)
	}
	if c.CPU.MinSkill < 0 || c.CPU.MaxSkill > 1 || c.CPU.MinSkill > c.CPU.MaxSkill {
		return invalidf("cpu skill range [%v, %v] must lie within [0, 1]", c.CPU.MinSkill, c.CPU.MaxSkill)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		return invalidf("difficulty.progression.type: unknown type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

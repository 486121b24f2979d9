package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := writeConfig(t, `
field:
  width: 96
tick_rate: 30
controls:
  player2: keys
`)

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}

	if cfg.Field.Width != 96 {
		t.Errorf("Field.Width = %d, expected 96", cfg.Field.Width)
	}
	if cfg.Field.Height != 64 {
		t.Errorf("Field.Height = %d, expected default 64", cfg.Field.Height)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Controls.Player2 != ControlKeys {
		t.Errorf("Controls.Player2 = %q, expected keys", cfg.Controls.Player2)
	}
}

func TestLoadPongMissingFile(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPong() should fail for a missing custom path")
	}
}

func TestLoadPongBadYAML(t *testing.T) {
	path := writeConfig(t, "field: [1, 2")
	if _, err := LoadPong(path); err == nil {
		t.Error("LoadPong() should fail for malformed YAML")
	}
}

func TestLoadPongEnvOverrides(t *testing.T) {
	path := writeConfig(t, "tick_rate: 30\n")
	t.Setenv("PONG_TICK_RATE", "120")
	t.Setenv("PONG_FIELD_HEIGHT", "48")
	t.Setenv("PONG_PLAYER1", "wheel")
	t.Setenv("PONG_CPU_MAX_SKILL", "0.8")
	t.Setenv("PONG_LOG_FILE", "/tmp/pong.log")

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}

	if cfg.TickRate != 120 {
		t.Errorf("TickRate = %d, expected env override 120", cfg.TickRate)
	}
	if cfg.Field.Height != 48 {
		t.Errorf("Field.Height = %d, expected 48", cfg.Field.Height)
	}
	if cfg.Controls.Player1 != ControlWheel {
		t.Errorf("Controls.Player1 = %q, expected wheel", cfg.Controls.Player1)
	}
	if cfg.CPU.MaxSkill != 0.8 {
		t.Errorf("CPU.MaxSkill = %v, expected 0.8", cfg.CPU.MaxSkill)
	}
	if cfg.Log.File != "/tmp/pong.log" {
		t.Errorf("Log.File = %q, expected /tmp/pong.log", cfg.Log.File)
	}
}

func TestLoadPongBadEnv(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("PONG_TICK_RATE", "fast")

	if _, err := LoadPong(path); err == nil {
		t.Error("LoadPong() should fail for a non-numeric PONG_TICK_RATE")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"tiny field", func(c *PongConfig) { c.Field.Width = 4 }},
		{"flat field", func(c *PongConfig) { c.Field.Height = 2 }},
		{"zero tick rate", func(c *PongConfig) { c.TickRate = 0 }},
		{"huge tick rate", func(c *PongConfig) { c.TickRate = 5000 }},
		{"unknown control", func(c *PongConfig) { c.Controls.Player2 = "joystick" }},
		{"unknown generator", func(c *PongConfig) { c.Random = "mt19937" }},
		{"no acceleration", func(c *PongConfig) { c.Controls.Acceleration = 0 }},
		{"no hold", func(c *PongConfig) { c.Controls.HoldTicks = 0 }},
		{"inverted skill", func(c *PongConfig) { c.CPU.MinSkill, c.CPU.MaxSkill = 0.9, 0.1 }},
		{"skill above one", func(c *PongConfig) { c.CPU.MaxSkill = 1.5 }},
		{"unknown progression", func(c *PongConfig) { c.Difficulty.Progression.Type = "wave" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			if err := ApplyPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyPreset() failed: %v", err)
			}
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	cfg := DefaultPongConfig()
	if err := ApplyPreset(&cfg, "insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyPreset(insane) = %v, expected ErrInvalidConfig", err)
	}
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("ApplyPreset(\"\") = %v, expected nil", err)
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(0, tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if got := dm.Level(5, 99999); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(5, _) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := dm.Level(100, 100); got != 0.7 {
		t.Errorf("Level() = %v, expected fixed 0.7", got)
	}
}

func TestDifficultySkill(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
	})
	cpu := CPUConfig{MinSkill: 0.4, MaxSkill: 0.8}

	if got := dm.Skill(cpu, 0, 0); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("Skill() at start = %v, expected 0.4", got)
	}
	if got := dm.Skill(cpu, 0, 10); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Skill() at max = %v, expected 0.8", got)
	}
}

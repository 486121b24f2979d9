package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration: the reference 128x64
// field at 60 ticks per second, keyboard against CPU.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  128,
			Height: 64,
		},
		TickRate: 60,
		Random:   RandomLFSR32,
		Controls: ControlsConfig{
			Player1:      ControlKeys,
			Player2:      ControlCPU,
			Acceleration: 0.3,
			HoldTicks:    8,
			WheelStep:    4,
		},
		CPU: CPUConfig{
			MaxSpeed: 3,
			MinSkill: 0.45,
			MaxSkill: 0.9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks per second
			},
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

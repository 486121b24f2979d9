// Package config provides YAML-based configuration loading, environment
// overrides and difficulty management for the pong host.
package config

// Control kinds accepted for each player.
const (
	ControlKeys  = "keys"
	ControlWheel = "wheel"
	ControlCPU   = "cpu"
)

// Random generator kinds.
const (
	RandomLFSR32 = "lfsr32" // Two 16-bit lanes
	RandomLFSR16 = "lfsr16" // Single lane, as on boards with a 16-bit seed
)

// PongConfig contains all configuration for the pong host.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field" envPrefix:"FIELD_"`
	TickRate   int              `yaml:"tick_rate" env:"TICK_RATE"`
	Seed       int64            `yaml:"seed" env:"SEED"`
	Random     string           `yaml:"random" env:"RANDOM"` // Generator kind: lfsr32 or lfsr16
	Controls   ControlsConfig   `yaml:"controls"`
	CPU        CPUConfig        `yaml:"cpu" envPrefix:"CPU_"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
}

// FieldConfig is the simulation field size in field units, fixed for the process.
type FieldConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// ControlsConfig selects and tunes the input source of each player.
type ControlsConfig struct {
	Player1      string  `yaml:"player1" env:"PLAYER1"`
	Player2      string  `yaml:"player2" env:"PLAYER2"`
	Acceleration float64 `yaml:"acceleration" env:"ACCELERATION"` // Speed gained per held tick
	HoldTicks    int     `yaml:"hold_ticks" env:"HOLD_TICKS"`     // Ticks a key press counts as held
	WheelStep    int     `yaml:"wheel_step" env:"WHEEL_STEP"`     // Encoder counts per wheel notch
}

// CPUConfig tunes the computer opponent.
type CPUConfig struct {
	MaxSpeed int     `yaml:"max_speed" env:"MAX_SPEED"`
	MinSkill float64 `yaml:"min_skill" env:"MIN_SKILL"`
	MaxSkill float64 `yaml:"max_skill" env:"MAX_SKILL"`
}

// DifficultyConfig defines how the CPU skill progresses.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Goals/ticks at which max difficulty is reached
}

// LogConfig configures the host log.
type LogConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`
	File       string `yaml:"file" env:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config for a difficulty preset. An empty preset
// keeps the loaded settings.
func ApplyPreset(cfg *PongConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return invalidf("unknown difficulty %q", preset)
	}
	return nil
}

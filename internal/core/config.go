package core

// RuntimeConfig contains the parameters the host passes to the simulation and renderer.
type RuntimeConfig struct {
	FieldW   int   // Simulation field width in field units
	FieldH   int   // Simulation field height in field units
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means derive one from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig matching the reference 128x64 panel.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   128,
		FieldH:   64,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Package control turns player devices into per-tick paddle deltas.
//
// Every source is sampled exactly once per tick, either through Delta while a
// rally is played or through Any while the host waits for players to resume.
package control

// Source produces paddle movement for one player.
type Source interface {
	// Delta returns this tick's movement: positive toward the top edge,
	// negative toward the bottom, zero for none.
	Delta() int
	// Any reports whether the player is actively using the device this tick.
	Any() bool
}

// Direction is one of the two paddle buttons.
type Direction int

const (
	Up Direction = iota
	Down
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Default button tuning.
const (
	DefaultAcceleration = 0.3
	DefaultHoldTicks    = 8
)

// hold tracks a key that terminals only report as presses: it stays down for
// a number of ticks after the last press.
type hold struct {
	remaining int
}

func (h *hold) press(ticks int) {
	h.remaining = ticks
}

func (h *hold) down() bool {
	return h.remaining > 0
}

func (h *hold) tick() {
	if h.remaining > 0 {
		h.remaining--
	}
}

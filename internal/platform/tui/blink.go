package tui

// BlinkTimer is a triangular duty cycle: each step moves one unit between the
// lit (up) and dark (down) halves of a period of constant length, reversing
// direction whenever a half runs empty.
type BlinkTimer struct {
	up     int
	down   int
	rising bool
}

// NewBlinkTimer starts fully dark with a period of start units.
func NewBlinkTimer(start int) BlinkTimer {
	return BlinkTimer{down: max(0, start)}
}

// Up returns the lit units of the current period.
func (b BlinkTimer) Up() int { return b.up }

// Down returns the dark units of the current period.
func (b BlinkTimer) Down() int { return b.down }

// Next advances to the following period.
func (b *BlinkTimer) Next() {
	if b.up == 0 {
		b.rising = true
	} else if b.down == 0 {
		b.rising = false
	}
	if b.up+b.down == 0 {
		return
	}
	if b.rising {
		b.up++
		b.down--
	} else {
		b.up--
		b.down++
	}
}

// Indicator turns a BlinkTimer into a per-tick on/off signal: a period is lit
// for Up units and dark for Down units, each unit lasting unitTicks ticks.
type Indicator struct {
	timer     BlinkTimer
	unitTicks int
	tick      int
}

// Default pause indicator shape.
const (
	DefaultBlinkPeriod    = 4
	DefaultBlinkUnitTicks = 3
)

// NewIndicator creates an indicator whose period is the given number of units.
func NewIndicator(period, unitTicks int) *Indicator {
	if period <= 0 {
		period = DefaultBlinkPeriod
	}
	if unitTicks <= 0 {
		unitTicks = DefaultBlinkUnitTicks
	}
	return &Indicator{timer: NewBlinkTimer(period), unitTicks: unitTicks}
}

// Reset restarts the indicator dark.
func (in *Indicator) Reset() {
	in.timer = NewBlinkTimer(in.timer.up + in.timer.down)
	in.tick = 0
}

// Tick advances one tick and reports whether the indicator is lit.
func (in *Indicator) Tick() bool {
	lit := in.tick < in.timer.Up()*in.unitTicks
	in.tick++
	if in.tick >= (in.timer.Up()+in.timer.Down())*in.unitTicks {
		in.tick = 0
		in.timer.Next()
	}
	return lit
}

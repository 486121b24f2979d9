package control

// Buttons is an up/down button pair whose paddle speed grows the longer a
// button is held.
type Buttons struct {
	acceleration float64
	holdTicks    int

	up, down           hold
	upSpeed, downSpeed float64
}

// NewButtons creates a button pair. Non-positive arguments select the defaults.
func NewButtons(acceleration float64, holdTicks int) *Buttons {
	if acceleration <= 0 {
		acceleration = DefaultAcceleration
	}
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Buttons{
		acceleration: acceleration,
		holdTicks:    holdTicks,
	}
}

// Press reports a key press for one of the buttons.
func (b *Buttons) Press(d Direction) {
	switch d {
	case Up:
		b.up.press(b.holdTicks)
	case Down:
		b.down.press(b.holdTicks)
	}
}

// Release lets go of both buttons immediately.
func (b *Buttons) Release() {
	b.up = hold{}
	b.down = hold{}
	b.upSpeed, b.downSpeed = 0, 0
}

// Delta samples the buttons for one tick.
// Holding both buttons cancels all movement.
func (b *Buttons) Delta() int {
	up, down := b.up.down(), b.down.down()

	if up {
		b.upSpeed += b.acceleration
	} else {
		b.upSpeed = 0
	}
	if down {
		b.downSpeed += b.acceleration
	} else {
		b.downSpeed = 0
	}
	if up && down {
		b.upSpeed, b.downSpeed = 0, 0
	}

	b.tick()
	return int(b.upSpeed - b.downSpeed)
}

// Any samples the buttons for one tick without moving.
func (b *Buttons) Any() bool {
	active := b.up.down() || b.down.down()
	b.tick()
	return active
}

func (b *Buttons) tick() {
	b.up.tick()
	b.down.tick()
}

// Trigger is a single key (the board's resume button). It never moves a paddle.
type Trigger struct {
	holdTicks int
	key       hold
}

// NewTrigger creates a trigger that stays down for holdTicks after each press.
func NewTrigger(holdTicks int) *Trigger {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Trigger{holdTicks: holdTicks}
}

// Press reports a key press.
func (t *Trigger) Press() {
	t.key.press(t.holdTicks)
}

// Delta is always zero.
func (t *Trigger) Delta() int {
	t.key.tick()
	return 0
}

// Any samples the key for one tick.
func (t *Trigger) Any() bool {
	active := t.key.down()
	t.key.tick()
	return active
}

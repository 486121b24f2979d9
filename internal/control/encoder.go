package control

// Counter is a free-running 16-bit position counter, such as a quadrature
// encoder peripheral.
type Counter interface {
	Count() uint16
}

// encoderDeadband is the movement Any ignores as jitter.
const encoderDeadband = 2

// Encoder reports how far a Counter moved since the previous sample.
type Encoder struct {
	counter Counter
	prev    uint16
}

// NewEncoder starts measuring from the counter's current position.
func NewEncoder(c Counter) *Encoder {
	return &Encoder{counter: c, prev: c.Count()}
}

// Delta returns the signed movement since the last sample. The counter may
// wrap around in either direction.
func (e *Encoder) Delta() int {
	cnt := e.counter.Count()
	out := int16(cnt - e.prev) //nolint:gosec // wrapping difference is the point
	e.prev = cnt
	return int(out)
}

// Any consumes this tick's movement and reports whether it exceeded the deadband.
func (e *Encoder) Any() bool {
	d := e.Delta()
	return d > encoderDeadband || d < -encoderDeadband
}

// DefaultWheelStep is how many counts one mouse wheel notch turns a WheelCounter.
const DefaultWheelStep = 4

// WheelCounter is a Counter driven by mouse wheel notches.
type WheelCounter struct {
	count uint16
	step  uint16
}

// NewWheelCounter creates a counter that moves step counts per notch.
func NewWheelCounter(step int) *WheelCounter {
	if step <= 0 {
		step = DefaultWheelStep
	}
	return &WheelCounter{step: uint16(step)} //nolint:gosec // small configured value
}

// Turn moves the counter by a number of notches; positive is wheel up.
func (w *WheelCounter) Turn(notches int) {
	if notches >= 0 {
		w.count += uint16(notches) * w.step //nolint:gosec // wraps like the hardware counter
	} else {
		w.count -= uint16(-notches) * w.step //nolint:gosec // wraps like the hardware counter
	}
}

// Count returns the current position.
func (w *WheelCounter) Count() uint16 {
	return w.count
}

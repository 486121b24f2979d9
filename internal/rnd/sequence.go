package rnd

// Sequence replays a fixed list of values, wrapping around at the end.
// An empty sequence always returns 0.
type Sequence struct {
	values []int32
	pos    int
	drawn  int
}

// NewSequence creates a sequence over values.
func NewSequence(values ...int32) *Sequence {
	return &Sequence{values: append([]int32(nil), values...)}
}

// Next returns the next scripted value.
func (s *Sequence) Next() int32 {
	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Drawn returns how many values have been taken so far.
func (s *Sequence) Drawn() int {
	return s.drawn
}

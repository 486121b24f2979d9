package pong

// Random is the source of pseudo-random integers used for serve direction and
// paddle spin. Hosts back it with a shift-register generator, tests with a
// scripted sequence.
type Random interface {
	Next() int32
}

// RandomFunc adapts a plain function to the Random interface.
type RandomFunc func() int32

// Next calls f.
func (f RandomFunc) Next() int32 {
	return f()
}

// euclidMod returns n mod m in [0, m) for any sign of n.
func euclidMod(n int32, m int32) int32 {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// Package rnd provides the pseudo-random sources that back pong.Random:
// xorshift shift-register generators for play and a scripted sequence for tests.
package rnd

import "time"

// step advances one 16-bit xorshift lane. Zero is a fixed point.
func step(lane uint16) uint16 {
	lane ^= lane >> 7
	lane ^= lane << 9
	lane ^= lane >> 13
	return lane
}

// Generator is a 32-bit generator made of two independent 16-bit lanes.
type Generator struct {
	lo uint16
	hi uint16
}

// NewGenerator splits seed into the low and high lanes.
func NewGenerator(seed uint32) *Generator {
	return &Generator{
		lo: uint16(seed & 0xffff),
		hi: uint16(seed >> 16),
	}
}

// Next advances both lanes and returns them joined as one 32-bit value.
func (g *Generator) Next() int32 {
	g.lo = step(g.lo)
	g.hi = step(g.hi)
	return int32(uint32(g.hi)<<16 | uint32(g.lo)) //nolint:gosec // reinterpretation of the joined lanes is intended
}

// Generator16 is the single-lane generator used on boards with a 16-bit seed.
type Generator16 struct {
	lane uint16
}

// NewGenerator16 creates a single-lane generator.
func NewGenerator16(seed uint16) *Generator16 {
	return &Generator16{lane: seed}
}

// Next advances the lane and returns it.
func (g *Generator16) Next() int32 {
	g.lane = step(g.lane)
	return int32(g.lane)
}

// SeedFrom folds a host seed into 32 bits with both lanes non-zero.
// A zero seed is replaced by one derived from the clock.
func SeedFrom(seed int64) uint32 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	folded := uint64(seed) ^ uint64(seed)>>32 //nolint:gosec // bit folding, sign is irrelevant
	lo := uint16(folded)
	hi := uint16(folded >> 16)
	if lo == 0 {
		lo = 0xACE1
	}
	if hi == 0 {
		hi = 0x1D87
	}
	return uint32(hi)<<16 | uint32(lo)
}

// NewSeeded16 returns a single-lane generator seeded with the low lane of
// SeedFrom, which is never zero.
func NewSeeded16(seed int64) *Generator16 {
	return NewGenerator16(uint16(SeedFrom(seed)))
}

// NewSeeded returns a 32-bit generator for a host seed, see SeedFrom.
func NewSeeded(seed int64) *Generator {
	return NewGenerator(SeedFrom(seed))
}

// Package mapping implements the deterministic, seed-driven infinite
// sequence of stream positions that a single symbol contributes to.
package mapping

import "math"

// multiplier is the constant multiplicative PRNG step. The exact value is
// load-bearing: together with the diff formula in Next it gives the density
// profile the codec relies on, where a symbol lands on position i with
// probability about 1/(1+i/2). A symbol's hits therefore thin out
// geometrically, and it contributes to only logarithmically many of the
// first n positions.
const multiplier uint64 = 0xDA942042E4DD58B5

// scale is 2^32, used in the diff formula below.
const scale = float64(1 << 32)

// RandomMapping is a stateful per-symbol position generator. Two mappings
// seeded from equal hashes produce identical sequences.
type RandomMapping struct {
	prng uint64
	last uint64
}

// New seeds a RandomMapping from a symbol's 64-bit hash.
func New(seedHash uint64) *RandomMapping {
	return &RandomMapping{prng: seedHash, last: 0}
}

// Next returns the next position in the sequence and advances the
// generator's internal state. The sequence is strictly increasing: if the
// computed step ever rounds to zero, it is forced to 1.
func (m *RandomMapping) Next() uint64 {
	next := m.last

	m.prng *= multiplier
	r := m.prng

	diff := math.Ceil((float64(m.last) + 1.5) * (scale/math.Sqrt(float64(r)+1) - 1))
	step := uint64(diff)
	if step < 1 {
		step = 1
	}
	m.last += step

	return next
}

// TakeWhile calls sink with successive positions from m for as long as they
// remain strictly less than bound, then stops. It is the "stop at bound"
// wrapper spec.md calls for in languages without lazy iterators.
func (m *RandomMapping) TakeWhile(bound uint64, sink func(pos uint64)) {
	for {
		pos := m.Next()
		if pos >= bound {
			return
		}
		sink(pos)
	}
}

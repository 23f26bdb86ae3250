// Package lcg implements the 64-bit linear congruential generator that drives
// frame generation.
//
// The generator follows s' = s*Multiplier + Increment (mod 2^64). Callers read
// the upper 32 bits of each state; Scaled maps them onto [0, n) with a
// multiply-shift instead of a modulo, matching how frame attributes are drawn.
//
// Determinism:
//   - The same starting state always yields the same sequence.
//   - Jump(n) is equivalent to calling Next n times, in O(log n).
//
// Concurrency:
//   - An LCG64 is a plain value with no shared state. Copy it to fork a stream;
//     do not share one *LCG64 across goroutines.
package lcg

const (
	// Multiplier is the LCG's multiplicative constant.
	Multiplier uint64 = 0x5D588B656C078965

	// Increment is the LCG's additive constant.
	Increment uint64 = 0x269EC3
)

// LCG64 is a 64-bit linear congruential generator.
type LCG64 struct {
	state uint64
}

// New returns a generator positioned at seed.
func New(seed uint64) LCG64 {
	return LCG64{state: seed}
}

// State returns the current state without advancing.
func (r *LCG64) State() uint64 {
	return r.state
}

// Next advances the generator and returns the new state.
//
// Complexity: O(1).
func (r *LCG64) Next() uint64 {
	r.state = r.state*Multiplier + Increment
	return r.state
}

// NextUpper32 advances and returns the upper half of the new state.
func (r *LCG64) NextUpper32() uint32 {
	return uint32(r.Next() >> 32)
}

// Scaled advances and maps the upper half of the new state onto [0, n).
func (r *LCG64) Scaled(n uint32) uint32 {
	return uint32((uint64(r.NextUpper32()) * uint64(n)) >> 32)
}

// Jump advances the generator by n steps using binary decomposition of the
// affine map; the result is identical to n calls of Next.
//
// Complexity: O(log n).
func (r *LCG64) Jump(n uint64) {
	var (
		mul    = Multiplier
		add    = Increment
		accMul = uint64(1)
		accAdd = uint64(0)
	)
	for n > 0 {
		if n&1 == 1 {
			accMul *= mul
			accAdd = accAdd*mul + add
		}
		add = (mul + 1) * add
		mul *= mul
		n >>= 1
	}
	r.state = accMul*r.state + accAdd
}

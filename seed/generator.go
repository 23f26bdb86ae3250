package seed

import (
	"iter"
	"slices"
	"time"
)

// HashedSeedGenerator enumerates every HashedSeed of a Criteria.
// It holds its own copy of the criteria and never mutates it, so one
// generator may be read from many goroutines.
type HashedSeedGenerator struct {
	criteria Criteria
	space    Space
	start    time.Time
	size     uint64
}

// NewHashedSeedGenerator builds a generator over c's seed space.
func NewHashedSeedGenerator(c Criteria) *HashedSeedGenerator {
	c.ButtonPresses = slices.Clone(c.ButtonPresses)
	space := c.Space()
	return &HashedSeedGenerator{
		criteria: c,
		space:    space,
		start:    c.FromTime.Truncate(time.Second),
		size:     space.Size(),
	}
}

// Len returns the number of seeds in the space.
func (g *HashedSeedGenerator) Len() uint64 {
	return g.size
}

// At returns the i-th seed in enumeration order. i must be < Len.
func (g *HashedSeedGenerator) At(i uint64) HashedSeed {
	vframe := i % g.space.VFrameValues
	i /= g.space.VFrameValues
	vcount := i % g.space.VCountValues
	i /= g.space.VCountValues
	timer0 := i % g.space.Timer0Values
	i /= g.space.Timer0Values
	button := i % g.space.ButtonCombos
	second := i / g.space.ButtonCombos

	c := &g.criteria
	return NewHashedSeed(
		c.Version,
		c.MACAddress,
		g.start.Add(time.Duration(second)*time.Second),
		c.ButtonPresses[button],
		c.Timer0Low+uint32(timer0),
		c.VCountLow+uint32(vcount),
		c.VFrameLow+uint32(vframe),
	)
}

// All yields every seed in enumeration order. Each call restarts from the
// first seed.
func (g *HashedSeedGenerator) All() iter.Seq[HashedSeed] {
	return func(yield func(HashedSeed) bool) {
		for i := uint64(0); i < g.size; i++ {
			if !yield(g.At(i)) {
				return
			}
		}
	}
}

// Package frame generates the per-seed sequence of WonderCard frames.
//
// A WonderCardGenerator is bound to one HashedSeed. Frame n is derived from
// the LCG state reached after n+1 steps from the raw seed; drawing a frame
// consumes a private copy of that state, so frames are independent of each
// other and Skip can jump straight to any offset.
//
// Draw order within a frame:
//
//	2 discarded draws → 6 IVs (HP AT DF SA SD SP, each scaled to 0..31)
//	→ 2 discarded draws → PID (upper 32 bits) → nature (scaled to 0..24)
//
// When shininess is not allowed, a PID that would be shiny for the given
// TID/SID has bit 28 flipped.
package frame

import (
	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/lcg"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/seed"
)

const (
	preIVDraws  = 2
	prePIDDraws = 2

	// shinyThreshold bounds the shiny value (TID^SID^PIDhigh^PIDlow).
	shinyThreshold = 8

	shinySuppressBit = 0x10000000
)

// WonderCard is one generated frame.
type WonderCard struct {
	Seed     seed.HashedSeed
	Number   uint64
	RNGValue uint64
	PID      uint32
	Nature   nature.Nature
	IVs      ivs.IVs
	Shiny    bool
}

// Ability returns the ability slot (0 or 1) encoded in the PID.
func (f WonderCard) Ability() uint32 {
	return (f.PID >> 16) & 1
}

// GenderValue returns the low PID byte used for gender thresholds.
func (f WonderCard) GenderValue() uint32 {
	return f.PID & 0xFF
}

// WonderCardGenerator produces WonderCard frames for one seed.
type WonderCardGenerator struct {
	seed       seed.HashedSeed
	rng        lcg.LCG64
	canBeShiny bool
	tid        uint16
	sid        uint16
	number     uint64
}

// NewWonderCardGenerator returns a generator positioned before frame 0.
func NewWonderCardGenerator(s seed.HashedSeed, canBeShiny bool, tid, sid uint16) *WonderCardGenerator {
	return &WonderCardGenerator{
		seed:       s,
		rng:        lcg.New(s.RawSeed),
		canBeShiny: canBeShiny,
		tid:        tid,
		sid:        sid,
	}
}

// Skip advances past n frames without generating them.
//
// Complexity: O(log n).
func (g *WonderCardGenerator) Skip(n uint64) {
	g.rng.Jump(n)
	g.number += n
}

// Next generates the next frame.
func (g *WonderCardGenerator) Next() WonderCard {
	start := g.rng.Next()
	r := g.rng

	for i := 0; i < preIVDraws; i++ {
		r.Next()
	}
	var v ivs.IVs
	for s := ivs.HP; s <= ivs.SP; s++ {
		v = v.With(s, r.Scaled(ivs.NumValues))
	}

	for i := 0; i < prePIDDraws; i++ {
		r.Next()
	}
	pid := r.NextUpper32()
	shiny := isShiny(pid, g.tid, g.sid)
	if shiny && !g.canBeShiny {
		pid ^= shinySuppressBit
		shiny = false
	}

	f := WonderCard{
		Seed:     g.seed,
		Number:   g.number,
		RNGValue: start,
		PID:      pid,
		Nature:   nature.FromIndex(r.Scaled(nature.NumNatures)),
		IVs:      v,
		Shiny:    shiny,
	}
	g.number++
	return f
}

func isShiny(pid uint32, tid, sid uint16) bool {
	return (uint32(tid) ^ uint32(sid) ^ (pid >> 16) ^ (pid & 0xFFFF)) < shinyThreshold
}

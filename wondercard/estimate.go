package wondercard

import (
	"math"
	"math/big"

	"github.com/katalvlaran/seedsearch/ivs"
)

// ivSpace is the number of distinct IV vectors (32^6).
const ivSpace = ivs.NumValues * ivs.NumValues * ivs.NumValues * ivs.NumValues * ivs.NumValues * ivs.NumValues

// ExpectedNumberOfResults estimates how many frames of the whole search space
// satisfy the filter, treating nature, IV ranges and hidden power as
// independent and uniformly distributed:
//
//	seeds × frames × ivCombinations / (32^6 × natureDivisor × hiddenPowerDivisor)
//
// The product is evaluated exactly and truncated once at the end; results
// beyond math.MaxUint64 saturate. Inverted ranges contribute zero.
func (c *Criteria) ExpectedNumberOfResults() uint64 {
	space := c.Space()

	n := new(big.Int).SetUint64(space.Seconds)
	for _, factor := range []uint64{
		space.ButtonCombos,
		space.Timer0Values,
		space.VCountValues,
		space.VFrameValues,
		c.frameWindow(),
		c.ivCombinations(),
	} {
		n.Mul(n, new(big.Int).SetUint64(factor))
	}

	d := new(big.Int).SetUint64(ivSpace * c.natureDivisor() * c.hiddenPowerDivisor())
	n.Quo(n, d)
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

func (c *Criteria) frameWindow() uint64 {
	if c.MaxFrame < c.MinFrame {
		return 0
	}
	return c.MaxFrame - c.MinFrame + 1
}

// ivCombinations counts the vectors inside [MinIVs, MaxIVs], or
// [MinIVs, ivs.Max] when no maximum is checked.
func (c *Criteria) ivCombinations() uint64 {
	upper := ivs.Max
	if c.ShouldCheckMaxIVs {
		upper = c.MaxIVs
	}

	combos := uint64(1)
	for s := ivs.HP; s <= ivs.SP; s++ {
		lo, hi := c.MinIVs.Get(s), upper.Get(s)
		if hi < lo {
			return 0
		}
		combos *= uint64(hi - lo + 1)
	}
	return combos
}

func (c *Criteria) natureDivisor() uint64 {
	if c.Nature.IsSpecific() {
		return 25
	}
	return 1
}

func (c *Criteria) hiddenPowerDivisor() uint64 {
	switch {
	case c.HiddenType == ivs.Unknown:
		return 1
	case c.HiddenType == ivs.Any:
		return ivs.NumHiddenPowers
	default:
		return ivs.NumHiddenPowers * ivs.NumHiddenTypes
	}
}

package wondercard_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/seed"
)

func TestEstimate_UnitSpaceReturnsFrameWindow(t *testing.T) {
	c := unitCriteria()
	assert.Equal(t, uint64(1), c.ExpectedNumberOfResults())

	c.MinFrame, c.MaxFrame = 10, 59
	assert.Equal(t, uint64(50), c.ExpectedNumberOfResults())
}

func TestEstimate_SeedSpaceProduct(t *testing.T) {
	c := unitCriteria()
	c.ToTime = c.FromTime.Add(9 * time.Second)
	c.ButtonPresses = []seed.Buttons{seed.NoButtons, seed.ButtonA, seed.ButtonB}
	c.Timer0High = c.Timer0Low + 1
	c.VCountHigh = c.VCountLow + 3
	c.VFrameHigh = c.VFrameLow + 4
	c.MaxFrame = 6

	assert.Equal(t, uint64(10*3*2*4*5*7), c.ExpectedNumberOfResults())
}

func TestEstimate_NatureDivisor(t *testing.T) {
	c := unitCriteria()
	c.MaxFrame = 999

	c.Nature = nature.Any
	assert.Equal(t, uint64(1000), c.ExpectedNumberOfResults())
	c.Nature = nature.Unknown
	assert.Equal(t, uint64(1000), c.ExpectedNumberOfResults())
	c.Nature = nature.Timid
	assert.Equal(t, uint64(40), c.ExpectedNumberOfResults())
}

func TestEstimate_HiddenPowerDivisor(t *testing.T) {
	c := unitCriteria()
	c.MaxFrame = 64000 - 1

	c.HiddenType = ivs.Unknown
	assert.Equal(t, uint64(64000), c.ExpectedNumberOfResults())

	c.HiddenType = ivs.Any
	c.MinHiddenPower = 70
	assert.Equal(t, uint64(1600), c.ExpectedNumberOfResults())

	c.HiddenType = ivs.Ice
	assert.Equal(t, uint64(100), c.ExpectedNumberOfResults())
}

func TestEstimate_IVRange(t *testing.T) {
	c := unitCriteria()
	c.MaxFrame = 1023

	// Two fixed components: 1/32 each.
	c.MinIVs = ivs.New(31, 31, 0, 0, 0, 0)
	assert.Equal(t, uint64(1), c.ExpectedNumberOfResults())

	// Bounded maximum on a third component halves the space again.
	c.MinIVs = ivs.New(31, 0, 0, 0, 0, 0)
	c.MaxIVs = ivs.New(31, 15, 31, 31, 31, 31)
	c.ShouldCheckMaxIVs = true
	assert.Equal(t, uint64(16), c.ExpectedNumberOfResults())

	// A maximum below the minimum empties the space.
	c.MaxIVs = ivs.New(30, 31, 31, 31, 31, 31)
	assert.Zero(t, c.ExpectedNumberOfResults())
}

func TestEstimate_TruncatesTowardZero(t *testing.T) {
	c := unitCriteria()
	c.Nature = nature.Bold
	c.MaxFrame = 23 // 24/25
	assert.Zero(t, c.ExpectedNumberOfResults())
}

func TestEstimate_Monotonic(t *testing.T) {
	base := unitCriteria()
	base.Nature = nature.Adamant
	base.MinIVs = ivs.New(20, 20, 20, 20, 20, 20)
	base.HiddenType = ivs.Any
	base.MinHiddenPower = 60

	prev := uint64(0)
	for frames := uint64(1); frames < 1<<24; frames <<= 2 {
		c := base
		c.MaxFrame = frames - 1
		got := c.ExpectedNumberOfResults()
		require.GreaterOrEqual(t, got, prev, "frames=%d", frames)
		prev = got
	}

	prev = 0
	for width := uint32(0); width < 1<<16; width = width*2 + 1 {
		c := base
		c.MaxFrame = 1 << 20
		c.Timer0High = c.Timer0Low + width
		got := c.ExpectedNumberOfResults()
		require.GreaterOrEqual(t, got, prev, "timer0 width=%d", width)
		prev = got
	}

	prev = 0
	for lo := int(ivs.MaxValue); lo >= 0; lo-- {
		c := base
		c.MaxFrame = 1 << 30
		c.MinIVs = base.MinIVs.With(ivs.SP, uint32(lo))
		got := c.ExpectedNumberOfResults()
		require.GreaterOrEqual(t, got, prev, "SP min=%d", lo)
		prev = got
	}
}

func TestEstimate_InvalidCriteriaDegenerate(t *testing.T) {
	c := unitCriteria()
	c.ToTime = c.FromTime.Add(-time.Second)
	assert.Zero(t, c.ExpectedNumberOfResults())

	c = unitCriteria()
	c.MinFrame, c.MaxFrame = 5, 4
	assert.Zero(t, c.ExpectedNumberOfResults())

	c = unitCriteria()
	c.ButtonPresses = nil
	assert.Zero(t, c.ExpectedNumberOfResults())
}

func TestEstimate_SaturatesInsteadOfWrapping(t *testing.T) {
	c := unitCriteria()
	c.ToTime = c.FromTime.Add(time.Second)
	c.Timer0Low, c.Timer0High = 0, math.MaxUint32
	c.VCountLow, c.VCountHigh = 0, math.MaxUint32
	assert.Equal(t, uint64(math.MaxUint64), c.ExpectedNumberOfResults())
}

package wondercard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/wondercard"
)

func wc(n nature.Nature, v ivs.IVs) frame.WonderCard {
	return frame.WonderCard{Nature: n, IVs: v}
}

func TestMatches_WildcardsAcceptEverything(t *testing.T) {
	c := unitCriteria()
	for _, n := range []nature.Nature{nature.Hardy, nature.Timid, nature.Quirky} {
		for _, v := range []ivs.IVs{0, ivs.New(31, 0, 31, 0, 31, 0), ivs.Max} {
			assert.True(t, c.Matches(wc(n, v)), "%s %s", n, v)
		}
	}

	c.Nature = nature.Any
	assert.True(t, c.Matches(wc(nature.Bold, 0)))
}

func TestMatches_SpecificNature(t *testing.T) {
	c := unitCriteria()
	c.Nature = nature.Modest

	assert.True(t, c.Matches(wc(nature.Modest, 0)))
	assert.False(t, c.Matches(wc(nature.Timid, ivs.Max)))
}

func TestMatches_IVBounds(t *testing.T) {
	c := unitCriteria()
	c.MinIVs = ivs.New(20, 0, 20, 0, 0, 30)

	assert.True(t, c.Matches(wc(nature.Hardy, ivs.New(20, 0, 25, 0, 0, 31))))
	assert.False(t, c.Matches(wc(nature.Hardy, ivs.New(19, 31, 31, 31, 31, 31))))

	// MaxIVs is ignored until enabled.
	c.MaxIVs = ivs.New(25, 31, 31, 31, 31, 31)
	hi := ivs.New(31, 0, 20, 0, 0, 30)
	assert.True(t, c.Matches(wc(nature.Hardy, hi)))
	c.ShouldCheckMaxIVs = true
	assert.False(t, c.Matches(wc(nature.Hardy, hi)))
	assert.True(t, c.Matches(wc(nature.Hardy, ivs.New(25, 0, 20, 0, 0, 30))))
}

func TestMatches_HiddenPower(t *testing.T) {
	ice70 := ivs.New(31, 31, 31, 31, 31, 30)
	grass := ivs.New(30, 31, 31, 30, 31, 31)
	withHiddenPower := func(e ivs.Element, minPower uint32) wondercard.Criteria {
		c := unitCriteria()
		c.HiddenType = e
		c.MinHiddenPower = minPower
		return c
	}

	assert.Equal(t, ivs.Ice, ice70.HiddenType())
	assert.Equal(t, uint32(70), ice70.HiddenPower())

	c := withHiddenPower(ivs.Unknown, 70)
	assert.True(t, c.Matches(wc(nature.Hardy, 0)), "Unknown disables the filter")

	c = withHiddenPower(ivs.Any, 70)
	assert.True(t, c.Matches(wc(nature.Hardy, ice70)))
	assert.False(t, c.Matches(wc(nature.Hardy, 0)), "all-zero IVs have power 30")

	c = withHiddenPower(ivs.Ice, 70)
	assert.True(t, c.Matches(wc(nature.Hardy, ice70)))

	// A type mismatch rejects even with no power requirement.
	c = withHiddenPower(ivs.Grass, 0)
	assert.False(t, c.Matches(wc(nature.Hardy, ice70)))
	assert.True(t, c.Matches(wc(nature.Hardy, grass)))
}

func TestMatches_ShortCircuitsOnNature(t *testing.T) {
	c := unitCriteria()
	c.Nature = nature.Adamant
	c.HiddenType = ivs.Ice
	c.MinHiddenPower = 70

	assert.False(t, c.Matches(wc(nature.Jolly, ivs.New(31, 31, 31, 31, 31, 30))))
	assert.True(t, c.Matches(wc(nature.Adamant, ivs.New(31, 31, 31, 31, 31, 30))))
}

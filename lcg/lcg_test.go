package lcg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedsearch/lcg"
)

func TestNextFormula(t *testing.T) {
	r := lcg.New(0)
	inc, mul := lcg.Increment, lcg.Multiplier
	require.Equal(t, lcg.Increment, r.Next())
	require.Equal(t, inc*mul+inc, r.Next())
}

func TestJumpMatchesRepeatedNext(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 7, 64, 1000, 4097} {
		stepped := lcg.New(0x0123456789ABCDEF)
		for i := uint64(0); i < n; i++ {
			stepped.Next()
		}
		jumped := lcg.New(0x0123456789ABCDEF)
		jumped.Jump(n)
		require.Equal(t, stepped.State(), jumped.State(), "n=%d", n)
	}
}

func TestScaledBounds(t *testing.T) {
	r := lcg.New(42)
	for i := 0; i < 10000; i++ {
		require.Less(t, r.Scaled(25), uint32(25))
	}
	require.Equal(t, uint32(0), r.Scaled(1))
}

func TestCopyForksStream(t *testing.T) {
	a := lcg.New(99)
	a.Next()
	b := a
	require.Equal(t, a.Next(), b.Next())
}

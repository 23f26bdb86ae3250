package ivs

import (
	"fmt"
	"strconv"
	"strings"
)

// IVs is a packed six-component statistic vector.
type IVs uint32

// Max is the vector with every component at MaxValue.
const Max IVs = 0x7FFF7FFF

const componentMask = 0x1F

// hiddenOrder lists components by their weight in the hidden type and power
// formulas (1, 2, 4, 8, 16, 32).
var hiddenOrder = [NumStats]Stat{HP, AT, DF, SP, SA, SD}

// New builds a vector from display-order components. Values above MaxValue
// are truncated to their low five bits.
func New(hp, at, df, sa, sd, sp uint32) IVs {
	var v IVs
	v = v.With(HP, hp)
	v = v.With(AT, at)
	v = v.With(DF, df)
	v = v.With(SA, sa)
	v = v.With(SD, sd)
	v = v.With(SP, sp)
	return v
}

// Get returns one component.
func (v IVs) Get(s Stat) uint32 {
	return (uint32(v) >> shifts[s]) & componentMask
}

// With returns a copy of v with component s replaced.
func (v IVs) With(s Stat, value uint32) IVs {
	shift := shifts[s]
	cleared := uint32(v) &^ (componentMask << shift)
	return IVs(cleared | (value&componentMask)<<shift)
}

func (v IVs) HP() uint32 { return v.Get(HP) }
func (v IVs) AT() uint32 { return v.Get(AT) }
func (v IVs) DF() uint32 { return v.Get(DF) }
func (v IVs) SA() uint32 { return v.Get(SA) }
func (v IVs) SD() uint32 { return v.Get(SD) }
func (v IVs) SP() uint32 { return v.Get(SP) }

// BetterThanOrEqual reports whether every component of v is >= the matching
// component of o.
func (v IVs) BetterThanOrEqual(o IVs) bool {
	for s := HP; s <= SP; s++ {
		if v.Get(s) < o.Get(s) {
			return false
		}
	}
	return true
}

// WorseThanOrEqual reports whether every component of v is <= the matching
// component of o.
func (v IVs) WorseThanOrEqual(o IVs) bool {
	for s := HP; s <= SP; s++ {
		if v.Get(s) > o.Get(s) {
			return false
		}
	}
	return true
}

// hiddenBits collects bit `bit` of each component into a 6-bit weighted sum.
func (v IVs) hiddenBits(bit uint) uint32 {
	var sum uint32
	for i, s := range hiddenOrder {
		sum |= ((v.Get(s) >> bit) & 1) << uint(i)
	}
	return sum
}

// HiddenType returns the hidden type derived from the components' low bits.
func (v IVs) HiddenType() Element {
	return ElementFromIndex(v.hiddenBits(0) * 15 / 63)
}

// HiddenPower returns the hidden power (30..70) derived from the components'
// second-lowest bits.
func (v IVs) HiddenPower() uint32 {
	return v.hiddenBits(1)*40/63 + MinHiddenPower
}

// String renders the vector as "HP/AT/DF/SA/SD/SP".
func (v IVs) String() string {
	parts := make([]string, NumStats)
	for s := HP; s <= SP; s++ {
		parts[s] = strconv.FormatUint(uint64(v.Get(s)), 10)
	}
	return strings.Join(parts, "/")
}

// ParseMin parses a vector whose wildcard components ("x", "*", "?") stand for 0.
func ParseMin(s string) (IVs, error) {
	return parse(s, 0)
}

// ParseMax parses a vector whose wildcard components stand for MaxValue.
func ParseMax(s string) (IVs, error) {
	return parse(s, MaxValue)
}

func parse(s string, wildcard uint32) (IVs, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != NumStats {
		return 0, fmt.Errorf("%w: %q has %d components, want %d", ErrMalformed, s, len(fields), NumStats)
	}

	var v IVs
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "x", "*", "?":
			v = v.With(Stat(i), wildcard)
			continue
		}
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrMalformed, Stat(i), f)
		}
		if n > MaxValue {
			return 0, fmt.Errorf("%w: %s=%d", ErrOutOfRange, Stat(i), n)
		}
		v = v.With(Stat(i), uint32(n))
	}
	return v, nil
}

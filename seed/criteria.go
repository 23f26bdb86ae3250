package seed

import "time"

// Criteria describes a seed space. Validation tags are enforced by callers
// that choose to validate (see wondercard.Criteria.Validate); the generator
// itself treats inverted ranges as empty.
type Criteria struct {
	Version    Version
	MACAddress uint64 `validate:"lte=281474976710655"`

	Timer0Low  uint32
	Timer0High uint32 `validate:"gtefield=Timer0Low"`
	VCountLow  uint32
	VCountHigh uint32 `validate:"gtefield=VCountLow"`
	VFrameLow  uint32
	VFrameHigh uint32 `validate:"gtefield=VFrameLow"`

	FromTime time.Time
	ToTime   time.Time `validate:"gtefield=FromTime"`

	ButtonPresses []Buttons `validate:"min=1"`
}

// Space is the size of each dimension of a seed space.
type Space struct {
	Seconds      uint64
	ButtonCombos uint64
	Timer0Values uint64
	VCountValues uint64
	VFrameValues uint64
}

// Space measures each dimension of c. Inverted ranges measure zero.
func (c *Criteria) Space() Space {
	return Space{
		Seconds:      closedWidth(uint64(c.FromTime.Unix()), uint64(c.ToTime.Unix()), c.ToTime.Unix() < c.FromTime.Unix()),
		ButtonCombos: uint64(len(c.ButtonPresses)),
		Timer0Values: closedWidth(uint64(c.Timer0Low), uint64(c.Timer0High), c.Timer0High < c.Timer0Low),
		VCountValues: closedWidth(uint64(c.VCountLow), uint64(c.VCountHigh), c.VCountHigh < c.VCountLow),
		VFrameValues: closedWidth(uint64(c.VFrameLow), uint64(c.VFrameHigh), c.VFrameHigh < c.VFrameLow),
	}
}

// Size returns the number of seeds in the space. The product wraps for
// spaces larger than 2^64 seeds; realistic spaces stay far below that.
func (s Space) Size() uint64 {
	return s.Seconds * s.ButtonCombos * s.Timer0Values * s.VCountValues * s.VFrameValues
}

// ExpectedNumberOfSeeds returns the number of seeds the generator will produce.
func (c *Criteria) ExpectedNumberOfSeeds() uint64 {
	return c.Space().Size()
}

func closedWidth(low, high uint64, inverted bool) uint64 {
	if inverted {
		return 0
	}
	return high - low + 1
}

package wondercard_test

import (
	"time"

	"github.com/katalvlaran/seedsearch/seed"
	"github.com/katalvlaran/seedsearch/wondercard"
)

var testStart = time.Date(2011, time.March, 6, 10, 0, 0, 0, time.UTC)

// unitCriteria returns a one-second, one-combination, single-register search
// over frame 0 with every filter disabled.
func unitCriteria() wondercard.Criteria {
	return wondercard.Criteria{
		Criteria: seed.Criteria{
			Version:       seed.BlackENG,
			MACAddress:    0x0009BF0A1B2C,
			Timer0Low:     0xC79,
			Timer0High:    0xC79,
			VCountLow:     0x60,
			VCountHigh:    0x60,
			VFrameLow:     5,
			VFrameHigh:    5,
			FromTime:      testStart,
			ToTime:        testStart,
			ButtonPresses: []seed.Buttons{seed.NoButtons},
		},
		MinFrame: 0,
		MaxFrame: 0,
		TID:      12345,
		SID:      54321,
	}
}

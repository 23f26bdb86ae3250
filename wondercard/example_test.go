package wondercard_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/search"
	"github.com/katalvlaran/seedsearch/seed"
	"github.com/katalvlaran/seedsearch/wondercard"
)

// ExampleCriteria_ExpectedNumberOfResults sizes a one-minute search before
// running it.
func ExampleCriteria_ExpectedNumberOfResults() {
	start := time.Date(2011, time.March, 6, 10, 0, 0, 0, time.UTC)
	c := wondercard.Criteria{
		Criteria: seed.Criteria{
			Version:       seed.WhiteENG,
			MACAddress:    0x0009BF123456,
			Timer0Low:     0xC79,
			Timer0High:    0xC7A,
			VCountLow:     0x60,
			VCountHigh:    0x60,
			VFrameLow:     5,
			VFrameHigh:    5,
			FromTime:      start,
			ToTime:        start.Add(59 * time.Second),
			ButtonPresses: []seed.Buttons{seed.NoButtons},
		},
		MaxFrame: 999,
		Nature:   nature.Timid,
		MinIVs:   ivs.New(16, 16, 16, 16, 16, 16),
	}

	fmt.Println("seeds:", c.ExpectedNumberOfSeeds())
	fmt.Println("expected results:", c.ExpectedNumberOfResults())
	// Output:
	// seeds: 120
	// expected results: 75
}

// ExampleSearch collects every frame of a single seed.
func ExampleSearch() {
	start := time.Date(2011, time.March, 6, 10, 0, 0, 0, time.UTC)
	c := wondercard.Criteria{
		Criteria: seed.Criteria{
			Version:       seed.BlackENG,
			MACAddress:    0x0009BF123456,
			Timer0Low:     0xC79,
			Timer0High:    0xC79,
			VCountLow:     0x60,
			VCountHigh:    0x60,
			VFrameLow:     5,
			VFrameHigh:    5,
			FromTime:      start,
			ToTime:        start,
			ButtonPresses: []seed.Buttons{seed.NoButtons},
		},
		MinFrame: 10,
		MaxFrame: 14,
	}

	var numbers []uint64
	err := wondercard.Search(c,
		func(f frame.WonderCard) { numbers = append(numbers, f.Number) },
		func(p search.Progress) bool {
			fmt.Printf("progress %d/%d\n", p.Done, p.Total)
			return true
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("frames:", numbers)
	// Output:
	// progress 1/1
	// frames: [10 11 12 13 14]
}

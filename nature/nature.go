// Package nature defines the 25 frame natures plus the Any and Unknown
// wildcards used by search criteria.
//
// The zero value is Unknown, so a zero-valued filter never restricts a search.
// Concrete natures are declared in game-index order; FromIndex maps the
// 0..24 index produced by a frame generator onto a Nature.
package nature

import (
	"errors"
	"fmt"
	"strings"
)

// NumNatures is the number of concrete (non-wildcard) natures.
const NumNatures = 25

// ErrUnknownNature is returned by Parse for names that match no nature.
var ErrUnknownNature = errors.New("nature: unknown nature")

// Nature is a categorical frame attribute.
type Nature uint8

const (
	// Unknown means "not requested"; it matches every frame.
	Unknown Nature = iota

	Hardy
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky

	// Any matches every frame, like Unknown, but records an explicit choice.
	Any
)

var names = [...]string{
	Unknown: "Unknown",
	Hardy:   "Hardy",
	Lonely:  "Lonely",
	Brave:   "Brave",
	Adamant: "Adamant",
	Naughty: "Naughty",
	Bold:    "Bold",
	Docile:  "Docile",
	Relaxed: "Relaxed",
	Impish:  "Impish",
	Lax:     "Lax",
	Timid:   "Timid",
	Hasty:   "Hasty",
	Serious: "Serious",
	Jolly:   "Jolly",
	Naive:   "Naive",
	Modest:  "Modest",
	Mild:    "Mild",
	Quiet:   "Quiet",
	Bashful: "Bashful",
	Rash:    "Rash",
	Calm:    "Calm",
	Gentle:  "Gentle",
	Sassy:   "Sassy",
	Careful: "Careful",
	Quirky:  "Quirky",
	Any:     "Any",
}

// FromIndex maps a generator index (0..24) to its Nature.
// Out-of-range indices yield Unknown.
func FromIndex(i uint32) Nature {
	if i >= NumNatures {
		return Unknown
	}
	return Nature(i + 1)
}

// Index returns the 0..24 game index, or -1 for the wildcards.
func (n Nature) Index() int {
	if !n.IsSpecific() {
		return -1
	}
	return int(n) - 1
}

// IsSpecific reports whether n names one concrete nature.
func (n Nature) IsSpecific() bool {
	return n >= Hardy && n <= Quirky
}

// IsWildcard reports whether n is Any or Unknown.
func (n Nature) IsWildcard() bool {
	return n == Any || n == Unknown
}

// String returns the nature's display name.
func (n Nature) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return fmt.Sprintf("Nature(%d)", uint8(n))
}

// Parse resolves a case-insensitive nature name. The empty string parses as
// Unknown and "any" or "*" as Any.
func Parse(s string) (Nature, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "unknown":
		return Unknown, nil
	case "any", "*":
		return Any, nil
	}
	for i := Hardy; i <= Quirky; i++ {
		if strings.EqualFold(names[i], s) {
			return i, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownNature, s)
}

package ivs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing.
var (
	// ErrMalformed is returned when a textual vector cannot be split into six parts.
	ErrMalformed = errors.New("ivs: malformed vector")

	// ErrOutOfRange is returned when a component is outside 0..MaxValue.
	ErrOutOfRange = errors.New("ivs: component out of range")

	// ErrUnknownElement is returned when an element name is not recognized.
	ErrUnknownElement = errors.New("ivs: unknown element")
)

const (
	// MaxValue is the ceiling of every component.
	MaxValue = 31

	// NumValues is the number of distinct values per component.
	NumValues = MaxValue + 1

	// NumStats is the number of components in a vector.
	NumStats = 6

	// NumHiddenTypes is the number of concrete hidden types.
	NumHiddenTypes = 16

	// NumHiddenPowers is the number of hidden power levels assumed by estimates.
	NumHiddenPowers = 40

	// MinHiddenPower and MaxHiddenPower bound HiddenPower's result.
	MinHiddenPower = 30
	MaxHiddenPower = 70
)

// Stat names one component of the vector.
type Stat int

// Components in display order.
const (
	HP Stat = iota
	AT
	DF
	SA
	SD
	SP
)

// shifts locates each Stat inside the packed word.
var shifts = [NumStats]uint{
	HP: 0,
	AT: 5,
	DF: 10,
	SA: 21,
	SD: 26,
	SP: 16,
}

var statNames = [NumStats]string{"HP", "AT", "DF", "SA", "SD", "SP"}

// String returns the short component name.
func (s Stat) String() string {
	if s < 0 || int(s) >= NumStats {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Element is a hidden type, or one of the two wildcards.
type Element uint8

const (
	// Unknown disables the hidden power filter.
	Unknown Element = iota

	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark

	// Any requests a minimum hidden power regardless of type.
	Any
)

var elementNames = [...]string{
	Unknown:  "Unknown",
	Fighting: "Fighting",
	Flying:   "Flying",
	Poison:   "Poison",
	Ground:   "Ground",
	Rock:     "Rock",
	Bug:      "Bug",
	Ghost:    "Ghost",
	Steel:    "Steel",
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Psychic:  "Psychic",
	Ice:      "Ice",
	Dragon:   "Dragon",
	Dark:     "Dark",
	Any:      "Any",
}

// ElementFromIndex maps a hidden type index (0..15) to its Element.
func ElementFromIndex(i uint32) Element {
	if i >= NumHiddenTypes {
		return Unknown
	}
	return Element(i + 1)
}

// IsSpecific reports whether e names a concrete hidden type.
func (e Element) IsSpecific() bool {
	return e >= Fighting && e <= Dark
}

// String returns the element's display name.
func (e Element) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return fmt.Sprintf("Element(%d)", uint8(e))
}

// ParseElement resolves a case-insensitive element name. The empty string
// parses as Unknown and "any" or "*" as Any.
func ParseElement(s string) (Element, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "unknown", "none":
		return Unknown, nil
	case "any", "*":
		return Any, nil
	}
	for e := Fighting; e <= Dark; e++ {
		if strings.EqualFold(elementNames[e], s) {
			return e, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

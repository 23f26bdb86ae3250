package wondercard

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/seed"
)

// ErrInvalidCriteria is returned by Validate when a Criteria breaks one of its
// invariants.
var ErrInvalidCriteria = errors.New("wondercard: invalid criteria")

// Criteria describes one WonderCard search: the seed space, the frame window,
// the identity values passed to frame generation and the acceptance filter.
// A Criteria is read-only for the duration of a search.
type Criteria struct {
	seed.Criteria

	MinFrame uint64
	MaxFrame uint64 `validate:"gtefield=MinFrame"`

	CanBeShiny bool
	TID        uint16
	SID        uint16

	// Nature is the required nature; Any and Unknown accept every nature.
	Nature nature.Nature

	MinIVs ivs.IVs
	// MaxIVs is consulted only when ShouldCheckMaxIVs is set.
	MaxIVs            ivs.IVs
	ShouldCheckMaxIVs bool

	// HiddenType is Unknown to disable the hidden power filter, Any to require
	// MinHiddenPower regardless of type, or a specific type.
	HiddenType     ivs.Element
	MinHiddenPower uint32 `validate:"lte=70"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(criteriaStructLevel, Criteria{})
	return v
}

// criteriaStructLevel checks the invariants that span several fields or
// live inside packed values.
func criteriaStructLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(Criteria)

	if c.ShouldCheckMaxIVs && !c.MinIVs.WorseThanOrEqual(c.MaxIVs) {
		sl.ReportError(c.MaxIVs, "MaxIVs", "MaxIVs", "ivbounds", c.MinIVs.String())
	}
	if c.Nature > nature.Any {
		sl.ReportError(c.Nature, "Nature", "Nature", "nature", "")
	}
	if c.HiddenType > ivs.Any {
		sl.ReportError(c.HiddenType, "HiddenType", "HiddenType", "element", "")
	}
	for i, b := range c.ButtonPresses {
		if !b.Possible() {
			field := fmt.Sprintf("ButtonPresses[%d]", i)
			sl.ReportError(b, field, field, "buttons", b.String())
		}
	}
}

// Validate reports whether c satisfies its invariants: ordered ranges and
// time window, at least one button combination, MaxIVs >= MinIVs when
// checked, and known enum values. Search does not call Validate; callers
// that accept untrusted criteria should.
func (c *Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	return nil
}

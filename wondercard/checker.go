package wondercard

import (
	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
)

// frameChecker is the acceptance predicate of a search. It only reads its
// Criteria, so one checker may serve every worker.
type frameChecker struct {
	criteria *Criteria
}

func (fc frameChecker) check(f frame.WonderCard) bool {
	return fc.checkNature(f.Nature) &&
		fc.checkIVs(f.IVs) &&
		fc.checkHiddenPower(f.IVs)
}

func (fc frameChecker) checkNature(n nature.Nature) bool {
	want := fc.criteria.Nature
	return want.IsWildcard() || want == n
}

func (fc frameChecker) checkIVs(v ivs.IVs) bool {
	return v.BetterThanOrEqual(fc.criteria.MinIVs) &&
		(!fc.criteria.ShouldCheckMaxIVs || v.WorseThanOrEqual(fc.criteria.MaxIVs))
}

// checkHiddenPower passes when the filter is Unknown; otherwise the type must
// be Any or match exactly, and the power must reach MinHiddenPower.
func (fc frameChecker) checkHiddenPower(v ivs.IVs) bool {
	want := fc.criteria.HiddenType
	if want == ivs.Unknown {
		return true
	}
	if want == ivs.Any || want == v.HiddenType() {
		return v.HiddenPower() >= fc.criteria.MinHiddenPower
	}
	return false
}

// Matches reports whether f satisfies c's nature, IV and hidden power filter.
func (c *Criteria) Matches(f frame.WonderCard) bool {
	return frameChecker{criteria: c}.check(f)
}

package wondercard

import (
	"slices"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/search"
	"github.com/katalvlaran/seedsearch/seed"
)

// ResultFunc receives every matching frame. The frame carries its seed and
// frame number.
type ResultFunc func(frame.WonderCard)

// ProgressFunc receives cumulative progress in seeds; returning false stops
// the search.
type ProgressFunc func(search.Progress) bool

// generatorFactory captures the identity values every frame generator needs.
type generatorFactory struct {
	canBeShiny bool
	tid        uint16
	sid        uint16
}

func newGeneratorFactory(c *Criteria) generatorFactory {
	return generatorFactory{canBeShiny: c.CanBeShiny, tid: c.TID, sid: c.SID}
}

func (gf generatorFactory) newGenerator(s seed.HashedSeed) search.Generator[frame.WonderCard] {
	return frame.NewWonderCardGenerator(s, gf.canBeShiny, gf.tid, gf.sid)
}

// Search walks every seed of c's seed space and every frame in
// [c.MinFrame, c.MaxFrame], calling onResult for each frame that Matches c.
// onProgress is called with cumulative seed counts, at least once.
//
// Search works on its own copy of c, so the caller may reuse c afterwards.
// It does not validate c: inverted ranges or an empty button set simply
// produce no results. opts tune the traversal (workers, context, progress
// interval); a cancelled context is returned as its error, while a stop
// requested through onProgress returns nil.
func Search(c Criteria, onResult ResultFunc, onProgress ProgressFunc, opts ...search.Option) error {
	c.ButtonPresses = slices.Clone(c.ButtonPresses)

	seeds := seed.NewHashedSeedGenerator(c.Criteria)
	checker := frameChecker{criteria: &c}
	factory := newGeneratorFactory(&c)
	frames := search.FrameRange{Min: c.MinFrame, Max: c.MaxFrame}

	return search.Search[seed.HashedSeed, frame.WonderCard](
		seeds, factory.newGenerator, frames, checker.check,
		onResult, onProgress, opts...,
	)
}

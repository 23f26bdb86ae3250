// Package wondercard searches the boot-seed space for WonderCard frames that
// satisfy a filter, and estimates how many such frames a search will find.
//
// What
//
//   - Criteria: the seed space (embedded seed.Criteria), the frame window
//     [MinFrame, MaxFrame], the shininess/identity values handed to frame
//     generation, and the filter (Nature, MinIVs/MaxIVs, HiddenType with
//     MinHiddenPower).
//   - ExpectedNumberOfResults: a pure estimate of the match count, computed
//     before searching to drive progress display or to bound runtime.
//   - Matches: the acceptance predicate. Checks run in order and stop at the
//     first failure: nature, IV bounds, hidden power.
//   - Search: composes a seed.HashedSeedGenerator, a per-seed
//     frame.WonderCardGenerator factory, the frame window and the predicate,
//     and hands them to search.Search. It does no filtering of its own.
//
// Filter semantics
//
//   - Nature Any or Unknown accepts every nature; a specific nature must match.
//   - Every IV must be >= MinIVs; with ShouldCheckMaxIVs, also <= MaxIVs.
//   - HiddenType Unknown disables the hidden power check. Any requires only
//     HiddenPower >= MinHiddenPower. A specific type must match exactly and
//     then meet MinHiddenPower; a type mismatch always rejects.
//
// Estimate
//
//	seeds × (MaxFrame−MinFrame+1) × Π(max_i−min_i+1)
//	───────────────────────────────────────────────────
//	    32^6 × natureDivisor × hiddenPowerDivisor
//
//	natureDivisor      = 25 for a specific nature, else 1
//	hiddenPowerDivisor = 1 (Unknown), 40 (Any), 40×16 (specific type)
//
//	The dimensions are assumed independent, so the figure is an estimate: the
//	real count differs, sometimes by a wide margin for narrow filters.
//
// Concurrency
//
//	Search copies its Criteria; the predicate and generator factory only read
//	that copy, so they are safe under search.WithWorkers(n). Callbacks are
//	invoked from the traversal's workers and must synchronize themselves when
//	more than one worker is used.
//
// Preconditions
//
//	Neither Search nor ExpectedNumberOfResults validates its Criteria. Call
//	Validate first for untrusted input; invalid criteria otherwise yield an
//	empty search or a zero estimate.
package wondercard

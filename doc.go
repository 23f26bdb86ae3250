// Package seedsearch is a brute-force seed finder for Gen 5 WonderCard
// events: describe the seeds a console could have booted with and the frame
// you want, and it walks every seed and every frame looking for matches.
//
// 🚀 What is in the box?
//
//	• Seed space: version, MAC, date/time window, held buttons, Timer0,
//	  VCount and VFrame ranges, each hashed into a 64-bit LCG seed
//	• Frame generation: PID, nature and IVs per frame, with O(log n) skips
//	• Filtering: nature, IV bounds and hidden power type/power
//	• Estimation: expected result count before spending the CPU
//	• Traversal: a generic, cancellable, optionally parallel search engine
//
// ✨ Why seedsearch?
//
//   - Deterministic: same criteria, same results, same order on one worker
//   - Honest estimates: exact integer arithmetic, saturating instead of wrapping
//   - Callback-driven: results and progress stream out, stop whenever you like
//
// Packages:
//
//	nature/     the 25 natures plus Any/Unknown wildcards
//	ivs/        packed IV vectors, partial order, hidden power
//	lcg/        64-bit LCG with jump-ahead
//	seed/       seed-space criteria, SHA-1 boot seed, seed enumerator
//	frame/      WonderCard frames and their per-seed generator
//	search/     generic seed × frame traversal engine
//	wondercard/ Criteria, estimator, frame checker and Search
//
// Quick example:
//
//	err := wondercard.Search(criteria,
//		func(f frame.WonderCard) { fmt.Println(f.Seed.Time, f.Number, f.IVs) },
//		func(p search.Progress) bool { return true },
//		search.WithWorkers(0),
//	)
//
// The seedsearch command (cmd/seedsearch) reads criteria from YAML and
// prints results as JSON lines.
package seedsearch

// Package search provides a generic exhaustive traversal over a seed space:
// for every seed an enumerator produces, it builds that seed's frame
// generator, walks a window of frame indices, tests each frame with a
// predicate and reports accepted frames and cumulative progress through
// callbacks.
//
// What
//
//   - Search[S, F] is parameterized over four independent capabilities:
//     an Enumerator[S], a GeneratorFactory[S, F], a FrameRange and an
//     acceptance predicate func(F) bool. None of them know about each other.
//   - Generators implementing Skipper jump directly to FrameRange.Min;
//     others are stepped frame by frame.
//   - Progress is reported in seeds, once per chunk of ProgressInterval seeds,
//     and at least once per call (an empty space reports {0, 0}).
//
// Concurrency
//
//	Seeds are claimed in chunks by Options.Workers goroutines managed by an
//	errgroup. With one worker (the default) results arrive in enumeration
//	order, then increasing frame index. With more, onResult may be called
//	concurrently and must synchronize itself. Progress callbacks are always
//	serialized and Done never decreases.
//
// Cancellation
//
//   - A progress callback returning false stops the traversal; Search returns nil.
//   - Cancelling the context aborts within one seed; Search returns ctx.Err().
//
// Complexity (N = seeds, W = frame window, G = generator cost per frame)
//
//   - Time:   O(N · W · G) plus O(N · log Min) for skipping generators.
//   - Memory: O(Workers); frames and seeds are not retained.
//
// Usage
//
//	err := search.Search(
//	    gen, factory, search.FrameRange{Min: 0, Max: 99}, accept,
//	    func(f Frame) { fmt.Println(f) },
//	    func(p search.Progress) bool { return p.Done < limit },
//	    search.WithContext(ctx),
//	    search.WithWorkers(0),
//	)
//
// Errors
//
//   - ErrNilEnumerator, ErrNilGeneratorFactory, ErrNilPredicate for missing collaborators.
//   - ErrOptionViolation for negative Workers or ProgressInterval.
//   - context.Canceled / context.DeadlineExceeded on cancellation.
package search

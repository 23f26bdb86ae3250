package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// errStopped unwinds workers after a progress callback asked to stop.
var errStopped = errors.New("search: stopped by progress callback")

// walker encapsulates mutable traversal state shared by all workers.
type walker[S, F any] struct {
	seeds      Enumerator[S]
	newGen     GeneratorFactory[S, F]
	frames     FrameRange
	accept     func(F) bool
	onResult   func(F)
	onProgress func(Progress) bool
	opts       Options
	total      uint64

	// cursor is the next unclaimed seed index.
	cursor atomic.Uint64

	// mu serializes progress reports so Done is monotonic.
	mu       sync.Mutex
	done     uint64
	reported bool
	stopped  bool
}

// Search walks every seed of seeds and, for each, every frame whose index lies
// in frames. Frames satisfying accept are passed to onResult. After each chunk
// of Options.ProgressInterval seeds, onProgress receives the cumulative
// Progress; returning false stops the traversal and Search returns nil.
// onProgress is always invoked at least once, including for an empty space.
//
// onResult and onProgress may be nil. With more than one worker, onResult is
// called concurrently and must synchronize itself; onProgress calls are
// serialized.
//
// Returns ErrNilEnumerator, ErrNilGeneratorFactory or ErrNilPredicate for
// missing collaborators, ErrOptionViolation for bad options, or the context's
// error on cancellation.
func Search[S, F any](
	seeds Enumerator[S],
	newGen GeneratorFactory[S, F],
	frames FrameRange,
	accept func(F) bool,
	onResult func(F),
	onProgress func(Progress) bool,
	opts ...Option,
) error {
	switch {
	case seeds == nil:
		return ErrNilEnumerator
	case newGen == nil:
		return ErrNilGeneratorFactory
	case accept == nil:
		return ErrNilPredicate
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if onResult == nil {
		onResult = func(F) {}
	}
	if onProgress == nil {
		onProgress = func(Progress) bool { return true }
	}

	w := &walker[S, F]{
		seeds:      seeds,
		newGen:     newGen,
		frames:     frames,
		accept:     accept,
		onResult:   onResult,
		onProgress: onProgress,
		opts:       o,
		total:      seeds.Len(),
	}
	return w.run()
}

// run fans the seed space out to the configured workers.
func (w *walker[S, F]) run() error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	workers := w.opts.Workers
	chunks := (w.total + w.opts.ProgressInterval - 1) / w.opts.ProgressInterval
	if uint64(workers) > chunks {
		workers = int(chunks)
	}

	g, ctx := errgroup.WithContext(w.opts.Ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error { return w.work(ctx) })
	}
	err := g.Wait()
	if errors.Is(err, errStopped) {
		return nil
	}
	if err != nil {
		return err
	}

	if !w.reported {
		w.report(0)
	}
	return nil
}

// work claims chunks of seeds until the space is exhausted.
func (w *walker[S, F]) work(ctx context.Context) error {
	interval := w.opts.ProgressInterval
	for {
		start := w.cursor.Add(interval) - interval
		if start >= w.total {
			return nil
		}
		end := min(start+interval, w.total)

		for i := start; i < end; i++ {
			// cancellation check (once per seed)
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			w.scan(w.seeds.At(i))
		}

		if !w.report(end - start) {
			return errStopped
		}
	}
}

// scan generates the frame window of one seed and tests every frame.
func (w *walker[S, F]) scan(s S) {
	n := w.frames.Len()
	if n == 0 {
		return
	}

	gen := w.newGen(s)
	if sk, ok := gen.(Skipper); ok {
		sk.Skip(w.frames.Min)
	} else {
		for i := uint64(0); i < w.frames.Min; i++ {
			gen.Next()
		}
	}

	for i := uint64(0); i < n; i++ {
		f := gen.Next()
		if w.accept(f) {
			w.onResult(f)
		}
	}
}

// report adds n finished seeds and invokes onProgress. It returns false once
// the traversal has been asked to stop.
func (w *walker[S, F]) report(n uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return false
	}
	w.done += n
	w.reported = true
	if !w.onProgress(Progress{Done: w.done, Total: w.total}) {
		w.stopped = true
		return false
	}
	return true
}

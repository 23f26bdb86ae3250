// Package search provides tunable options, collaborator interfaces and error
// definitions for exhaustive seed × frame traversals.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for Search execution.
var (
	// ErrNilEnumerator is returned when no seed enumerator is supplied.
	ErrNilEnumerator = errors.New("search: seed enumerator is nil")

	// ErrNilGeneratorFactory is returned when no per-seed generator factory is supplied.
	ErrNilGeneratorFactory = errors.New("search: generator factory is nil")

	// ErrNilPredicate is returned when no acceptance predicate is supplied.
	ErrNilPredicate = errors.New("search: predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultProgressInterval is the number of seeds between progress reports.
const DefaultProgressInterval = 1024

// Enumerator is a finite, random-access sequence of seeds.
// At must be safe for concurrent use.
type Enumerator[S any] interface {
	Len() uint64
	At(i uint64) S
}

// Generator yields the frames of one seed, frame 0 first.
type Generator[F any] interface {
	Next() F
}

// Skipper is implemented by generators that can jump ahead without
// producing the skipped frames.
type Skipper interface {
	Skip(n uint64)
}

// GeneratorFactory builds a fresh Generator for one seed. It is invoked
// concurrently when more than one worker is configured.
type GeneratorFactory[S, F any] func(seed S) Generator[F]

// FrameRange is the closed window [Min, Max] of frame indices inspected per seed.
type FrameRange struct {
	Min uint64
	Max uint64
}

// Len returns the number of frames in the window, or 0 if it is inverted.
func (r FrameRange) Len() uint64 {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Progress reports cumulative traversal progress in seeds.
type Progress struct {
	Done  uint64
	Total uint64
}

// Fraction returns Done/Total in [0, 1]; an empty traversal reports 1.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// Option configures Search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters that tune a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per seed.
	Ctx context.Context

	// Workers is the number of goroutines sharing the seed space.
	// With one worker, results arrive in enumeration order.
	Workers int

	// ProgressInterval is the number of seeds per work chunk and progress report.
	ProgressInterval uint64

	err error
}

// DefaultOptions returns Options with a background context, a single worker
// and DefaultProgressInterval.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Workers:          1,
		ProgressInterval: DefaultProgressInterval,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count.
//
//	n > 0: use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithProgressInterval sets how many seeds make up one progress report.
//
//	n > 0: report every n seeds
//	n == 0: DefaultProgressInterval
//	n < 0: invalid option → ErrOptionViolation
func WithProgressInterval(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: ProgressInterval cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.ProgressInterval = DefaultProgressInterval
		default:
			o.ProgressInterval = uint64(n)
		}
	}
}

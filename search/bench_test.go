package search_test

import (
	"testing"

	"github.com/katalvlaran/seedsearch/search"
)

func benchmarkSearch(b *testing.B, workers int) {
	const seeds = 1 << 12
	window := search.FrameRange{Min: 0, Max: 63}
	reject := func(p pair) bool { return p.frame == ^uint64(0) }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := search.Search[uint64, pair](intSeeds(seeds), newCounter, window, reject, nil, nil,
			search.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_SingleWorker measures the sequential traversal.
func BenchmarkSearch_SingleWorker(b *testing.B) { benchmarkSearch(b, 1) }

// BenchmarkSearch_AllCores measures the sharded traversal.
func BenchmarkSearch_AllCores(b *testing.B) { benchmarkSearch(b, 0) }

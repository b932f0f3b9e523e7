package dedupe_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/reshape/dedupe"
)

// BenchmarkSlice measures deduplication of a 10k-element slice where
// every value repeats ten times.
func BenchmarkSlice(b *testing.B) {
	items := make([]string, 10_000)
	for i := range items {
		items[i] = strconv.Itoa(i % 1_000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dedupe.Slice(items)
	}
}

// BenchmarkDedupe_AnySlice measures the dispatching path with its
// per-element comparability guard.
func BenchmarkDedupe_AnySlice(b *testing.B) {
	items := make([]any, 10_000)
	for i := range items {
		items[i] = i % 1_000
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dedupe.Dedupe(items); err != nil {
			b.Fatal(err)
		}
	}
}

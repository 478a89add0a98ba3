package quant

import (
	"cmp"
	"math"
	"slices"
)

// Order0BitsEstimate computes the order-0 entropy estimate of a multiset
// of symbols: H = sum_i f_i * -log2(f_i / N). An empty stream costs 0
// bits; a stream of one repeated symbol also costs 0 bits (entropy of a
// singleton distribution), which falls out of the formula naturally.
//
// Symbols are summed in ascending order rather than by ranging over the
// frequency map directly: map iteration order is randomized per run, and
// this is called twice for each of the MaxScalingFactor candidates per
// subframe with its
// result feeding SearchScale's strict-less-than tie-break, so a
// non-deterministic float64 summation order could make Encode produce
// different output across calls on identical input.
func Order0BitsEstimate[T cmp.Ordered](symbols []T) float64 {
	if len(symbols) == 0 {
		return 0
	}
	freqs := make(map[T]uint32, len(symbols))
	for _, s := range symbols {
		freqs[s]++
	}
	keys := make([]T, 0, len(freqs))
	for k := range freqs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	n := float64(len(symbols))
	var bits float64
	for _, k := range keys {
		freq := float64(freqs[k])
		prob := freq / n
		bits += -math.Log2(prob) * freq
	}
	return bits
}

// Package generate holds the puzzle-building helpers the games share:
// shuffling, sampling, answer choices and level formulas.
package generate

import "math/rand"

// Shuffle returns a Fisher-Yates shuffled copy of items. The input is not
// modified.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample draws k distinct positions of items without replacement, in random
// order. k is clamped to len(items).
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}
	return Shuffle(rng, items)[:k]
}

// Pick returns one element of items chosen uniformly. items must be non-empty.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// Draw returns n elements chosen uniformly with replacement from items.
func Draw[T any](rng *rand.Rand, items []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Pick(rng, items)
	}
	return out
}

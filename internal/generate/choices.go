package generate

import "math/rand"

// Choices builds the offered options for a selection puzzle: the answer
// plus up to want-1 distractors, shuffled.
//
// Distractors equal to the answer and repeated distractors are filtered
// before anything is offered. When filtering leaves too few, fewer choices
// are returned; the answer is always present exactly once, so the result is
// never empty.
func Choices[T comparable](rng *rand.Rand, answer T, distractors []T, want int) []T {
	out := []T{answer}
	seen := map[T]bool{answer: true}
	for _, d := range distractors {
		if len(out) >= want {
			break
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return Shuffle(rng, out)
}

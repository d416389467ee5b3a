package generate

// Step is the capped monotonic formula most level configs share:
// min(base + (level-offset)/every, limit). every must be positive.
func Step(base, level, offset, every, limit int) int {
	v := base + (level-offset)/every
	if v > limit {
		return limit
	}
	return v
}

// Floor clamps v to at least lo.
func Floor(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

package render

// indexKeys labels choices by position: 1-9, then 0, then a-z.
const indexKeys = "1234567890abcdefghijklmnopqrstuvwxyz"

// IndexKey returns the key that picks the i-th choice.
func IndexKey(i int) (rune, bool) {
	if i < 0 || i >= len(indexKeys) {
		return 0, false
	}
	return rune(indexKeys[i]), true
}

// KeyIndex is the inverse of IndexKey. Upper-case letters count as their
// lower-case key.
func KeyIndex(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for i, k := range indexKeys {
		if k == r {
			return i, true
		}
	}
	return 0, false
}

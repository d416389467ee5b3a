package wordle

// LetterState is how one guessed letter relates to the target. States are
// ordered by priority for the keyboard: a key never drops to a lower state.
type LetterState uint8

const (
	Empty LetterState = iota
	Absent
	Present
	Correct
)

func (l LetterState) String() string {
	switch l {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "empty"
	}
}

// Classifier scores a guess against the target, one state per letter.
type Classifier func(guess, target string) []LetterState

// Classify checks each letter on its own: right place is Correct, anywhere
// else in the target is Present. Repeated letters in the guess can all be
// marked Present even when the target holds fewer copies.
func Classify(guess, target string) []LetterState {
	out := make([]LetterState, len(guess))
	for i := range guess {
		switch {
		case i < len(target) && guess[i] == target[i]:
			out[i] = Correct
		case containsByte(target, guess[i]):
			out[i] = Present
		default:
			out[i] = Absent
		}
	}
	return out
}

// Reconcile is the two-pass classifier: exact matches claim their target
// letters first, then Present is handed out only while unclaimed copies
// remain.
func Reconcile(guess, target string) []LetterState {
	out := make([]LetterState, len(guess))
	var left [256]int
	for i := range target {
		if i < len(guess) && guess[i] == target[i] {
			out[i] = Correct
			continue
		}
		left[target[i]]++
	}
	for i := range guess {
		if out[i] == Correct {
			continue
		}
		if left[guess[i]] > 0 {
			left[guess[i]]--
			out[i] = Present
		} else {
			out[i] = Absent
		}
	}
	return out
}

func containsByte(s string, b byte) bool {
	for i := range s {
		if s[i] == b {
			return true
		}
	}
	return false
}

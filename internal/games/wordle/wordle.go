// Package wordle is the five-letter word guessing game with one target per
// level.
package wordle

import (
	"maps"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const (
	MaxLevel   = 50
	WordLength = 5
	MaxGuesses = 6
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Config is the resolved target for one level. Target is empty when the
// word list has no entry for the level; Generate then picks one.
type Config struct {
	Level     int
	Target    string
	Reconcile bool
}

// Resolve uses the simplified classifier.
func Resolve(level int) Config {
	cfg := Config{Level: level}
	if level >= 1 && level <= len(assets.WordleWords) {
		cfg.Target = assets.WordleWords[level-1]
	}
	return cfg
}

// ResolveReconciled is Resolve with the two-pass classifier.
func ResolveReconciled(level int) Config {
	cfg := Resolve(level)
	cfg.Reconcile = true
	return cfg
}

// Guess is one submitted row.
type Guess struct {
	Word   string
	States []LetterState
}

// State is one Wordle round.
type State struct {
	round.Scorecard
	cfg      Config
	target   string
	guesses  []Guess
	entry    string
	keyboard map[byte]LetterState
	phase    round.Phase
}

func Generate(cfg Config, rng *rand.Rand) State {
	target := cfg.Target
	if target == "" {
		target = generate.Pick(rng, assets.WordleWords)
	}
	return State{cfg: cfg, target: target}
}

func info() round.Info {
	return round.Info{
		ID:          "wordle",
		Title:       "Wordle",
		Emoji:       "🟩",
		Description: "Guess the five-letter word in six tries.",
		Category:    round.CategoryLanguage,
		Difficulty:  round.Hard,
		MaxLevel:    MaxLevel,
		Input:       round.InputType,
	}
}

var (
	// Game marks guesses with the simplified classifier.
	Game = round.Leveled[Config, State]{Info: info(), Resolve: Resolve, Generate: Generate}
	// Reconciled marks repeated letters the standard way.
	Reconciled = round.Leveled[Config, State]{Info: info(), Resolve: ResolveReconciled, Generate: Generate}
)

func NewSession(rng *rand.Rand, timers round.Timers, opts ...round.Option) round.Session {
	return round.NewController(Game, rng, timers, opts...)
}

func (s State) Start() (State, []round.Effect) {
	s.phase = round.PhaseInput
	return s, nil
}

func (s State) Apply(ev round.Event) (State, []round.Effect) {
	if s.Done() {
		return s, nil
	}
	switch ev.Kind {
	case round.EventLetter:
		if utf8.RuneCountInString(s.entry) >= WordLength {
			return s, nil
		}
		s.entry += strings.ToUpper(string(ev.Letter))
		return s, nil
	case round.EventErase:
		if s.entry == "" {
			return s, nil
		}
		_, size := utf8.DecodeLastRuneInString(s.entry)
		s.entry = s.entry[:len(s.entry)-size]
		return s, nil
	case round.EventSubmit:
		return s.submit()
	}
	return s, nil
}

func (s State) submit() (State, []round.Effect) {
	if utf8.RuneCountInString(s.entry) != WordLength {
		return s, []round.Effect{round.Reject("Invalid word", "Word must be 5 letters long.")}
	}
	if !isUpperAlpha(s.entry) {
		return s, []round.Effect{round.Reject("Not a valid word", "Please enter a valid 5-letter word.")}
	}

	classify := Classify
	if s.cfg.Reconcile {
		classify = Reconcile
	}
	g := Guess{Word: s.entry, States: classify(s.entry, s.target)}
	s.guesses = append(slices.Clone(s.guesses), g)
	s.keyboard = mergeKeyboard(s.keyboard, g)
	s.entry = ""

	switch {
	case g.Word == s.target:
		var eff round.Effect
		n := len(s.guesses)
		s.phase = round.PhaseResult
		s.Scorecard, eff = s.Award((7-n)*100 + 10*s.cfg.Level)
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		return s, []round.Effect{eff, round.Inform("🎉 You Won!", "Found the word in "+tries(n)+".")}
	case len(s.guesses) >= MaxGuesses:
		s.phase = round.PhaseResult
		s.Scorecard = s.Finish(round.OutcomeFail)
		return s, []round.Effect{round.Reject("❌ Game Over!", "The word was: "+s.target)}
	}
	return s, nil
}

func tries(n int) string {
	if n == 1 {
		return "1 try"
	}
	return strconv.Itoa(n) + " tries"
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// mergeKeyboard raises each guessed key to its best state so far.
func mergeKeyboard(prev map[byte]LetterState, g Guess) map[byte]LetterState {
	next := make(map[byte]LetterState, len(prev)+len(g.Word))
	maps.Copy(next, prev)
	for i := range g.Word {
		if st := g.States[i]; st > next[g.Word[i]] {
			next[g.Word[i]] = st
		}
	}
	return next
}

func (s State) Phase() round.Phase { return s.phase }

// Target is the word to find.
func (s State) Target() string { return s.target }

// Guesses returns the submitted rows.
func (s State) Guesses() []Guess { return slices.Clone(s.guesses) }

// Key reports the keyboard state of letter.
func (s State) Key(letter byte) LetterState { return s.keyboard[letter] }

var marks = map[LetterState]round.Mark{
	Empty:   round.MarkPlain,
	Absent:  round.MarkAbsent,
	Present: round.MarkPresent,
	Correct: round.MarkCorrect,
}

func (s State) View() round.View {
	board := make([][]round.Tile, MaxGuesses)
	for r := range board {
		row := make([]round.Tile, WordLength)
		for c := range row {
			row[c] = round.Tile{Glyph: " ", Mark: round.MarkHidden}
		}
		switch {
		case r < len(s.guesses):
			g := s.guesses[r]
			for c := range g.Word {
				row[c] = round.Tile{Glyph: string(g.Word[c]), Mark: marks[g.States[c]]}
			}
		case r == len(s.guesses):
			for c, ch := range []rune(s.entry) {
				row[c] = round.Tile{Glyph: string(ch), Mark: round.MarkSelected}
			}
		}
		board[r] = row
	}

	keyboard := make([][]round.Tile, len(keyboardRows))
	for i, keys := range keyboardRows {
		row := make([]round.Tile, len(keys))
		for j := range keys {
			row[j] = round.Tile{Glyph: string(keys[j]), Mark: marks[s.keyboard[keys[j]]]}
		}
		keyboard[i] = row
	}

	v := round.View{
		Prompt:   "Guess the 5-letter word",
		Board:    board,
		Entry:    s.entry,
		Slots:    WordLength,
		Seconds:  -1,
		Keyboard: keyboard,
		Counters: []round.Counter{{Label: "Guesses", Value: len(s.guesses)}},
	}
	if r, ok := s.Result(); ok {
		if r.Outcome == round.OutcomeSuccess {
			v.Status = "🎉 You Won!"
		} else {
			v.Status = "The word was: " + s.target
		}
	}
	return v
}

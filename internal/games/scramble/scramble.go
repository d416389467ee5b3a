// Package scramble is Word Scramble: unscramble a word about wellness and
// mindfulness.
package scramble

import (
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const MaxLevel = 20

// Config is the resolved difficulty of one level.
type Config struct {
	Level     int
	MaxLength int
}

func Resolve(level int) Config {
	return Config{Level: level, MaxLength: generate.Step(4, level, 0, 3, 10)}
}

// Words returns the vocabulary allowed at cfg.
func Words(cfg Config) []string {
	var out []string
	for _, w := range assets.ScrambleWords {
		if len(w) <= cfg.MaxLength {
			out = append(out, w)
		}
	}
	return out
}

// State is one Word Scramble round.
type State struct {
	round.Scorecard
	cfg       Config
	word      string
	scrambled string
	entry     string
	hinted    bool
	phase     round.Phase
}

func Generate(cfg Config, rng *rand.Rand) State {
	word := generate.Pick(rng, Words(cfg))
	return State{cfg: cfg, word: word, scrambled: Scramble(rng, word)}
}

// Scramble shuffles the letters of word. The result differs from word
// whenever word has at least two distinct letters.
func Scramble(rng *rand.Rand, word string) string {
	letters := strings.Split(word, "")
	for range 10 {
		if s := strings.Join(generate.Shuffle(rng, letters), ""); s != word {
			return s
		}
	}
	// Rotating by one changes any word that is not a single repeated letter.
	return word[1:] + word[:1]
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "scramble",
		Title:       "Word Scramble",
		Emoji:       "🔀",
		Description: "Unscramble words related to mental wellness and mindfulness.",
		Category:    round.CategoryLanguage,
		Difficulty:  round.Easy,
		MaxLevel:    MaxLevel,
		Input:       round.InputType,
	},
	Resolve:  Resolve,
	Generate: Generate,
}

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
		if utf8.RuneCountInString(s.entry) < len(s.word) {
			s.entry += strings.ToUpper(string(ev.Letter))
		}
	case round.EventErase:
		if s.entry != "" {
			_, size := utf8.DecodeLastRuneInString(s.entry)
			s.entry = s.entry[:len(s.entry)-size]
		}
	case round.EventHint:
		if s.hinted {
			return s, []round.Effect{round.Reject("No hints left", "One hint per word.")}
		}
		s.hinted = true
		return s, []round.Effect{round.Inform("Hint", "It starts with "+s.word[:1]+".")}
	case round.EventSubmit:
		return s.submit()
	}
	return s, nil
}

// Reward is what a correct answer is worth, halved after a hint.
func (s State) Reward() int {
	points := 10*len(s.word) + 5*s.cfg.Level
	if s.hinted {
		points /= 2
	}
	return points
}

func (s State) submit() (State, []round.Effect) {
	if utf8.RuneCountInString(s.entry) != len(s.word) {
		return s, []round.Effect{round.Reject("Too short", "Use every letter of the scramble.")}
	}
	s.phase = round.PhaseResult
	if s.entry == s.word {
		var eff round.Effect
		s.Scorecard, eff = s.Award(s.Reward())
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		return s, []round.Effect{eff, round.Inform("Correct!", s.word+" it is.")}
	}
	s.Scorecard = s.Finish(round.OutcomeFail)
	return s, []round.Effect{round.Reject("Not quite", "The word was "+s.word+".")}
}

func (s State) Phase() round.Phase { return s.phase }

// Word is the answer.
func (s State) Word() string { return s.word }

// Scrambled is the shuffled word shown to the player.
func (s State) Scrambled() string { return s.scrambled }

func (s State) View() round.View {
	shown := make([]round.Tile, 0, len(s.scrambled))
	for _, l := range strings.Split(s.scrambled, "") {
		shown = append(shown, round.Tile{Glyph: l})
	}
	board := [][]round.Tile{shown}
	if s.hinted {
		hint := slices.Repeat([]round.Tile{{Glyph: "_", Mark: round.MarkHidden}}, len(s.word))
		hint[0] = round.Tile{Glyph: s.word[:1], Mark: round.MarkPresent}
		board = append(board, hint)
	}

	v := round.View{
		Prompt:   "Unscramble the word",
		Board:    board,
		Entry:    s.entry,
		Slots:    len(s.word),
		Seconds:  -1,
		Counters: []round.Counter{{Label: "Reward", Value: s.Reward()}},
	}
	if r, ok := s.Result(); ok {
		if r.Outcome == round.OutcomeSuccess {
			v.Status = "Correct!"
		} else {
			v.Status = "The word was " + s.word
		}
	}
	return v
}

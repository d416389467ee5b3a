// Package wordmaker is Word Maker: build the level's words from a wheel of
// letters. Coins and hints carry from one level to the next.
package wordmaker

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const (
	MaxLevel = 50

	MinWordLength = 3
	StartCoins    = 100
	StartHints    = 3
	ShuffleCost   = 10

	requiredCoins = 5
	bonusCoins    = 10
)

// Config is one row of the level table with the wheel widened so every
// required word can be built, and the bonus words that cannot be built
// dropped.
type Config struct {
	Level    int
	Letters  []string
	Required []assets.PlacedWord
	Bonus    []string
}

func Resolve(level int) Config {
	table := assets.WordMakerLevels()
	row := table[min(level, len(table))-1]

	letters := strings.Split(row.Letters, "")
	for _, w := range row.Required {
		letters = widen(letters, w.Word)
	}
	var bonus []string
	for _, w := range row.Bonus {
		if buildable(letters, w) {
			bonus = append(bonus, w)
		}
	}
	return Config{
		Level:    level,
		Letters:  letters,
		Required: slices.Clone(row.Required),
		Bonus:    bonus,
	}
}

func counts(letters []string) map[string]int {
	m := make(map[string]int, len(letters))
	for _, l := range letters {
		m[l]++
	}
	return m
}

// widen appends the letters word needs beyond what letters already holds.
func widen(letters []string, word string) []string {
	have := counts(letters)
	for _, l := range strings.Split(word, "") {
		if have[l] > 0 {
			have[l]--
			continue
		}
		letters = append(letters, l)
	}
	return letters
}

func buildable(letters []string, word string) bool {
	have := counts(letters)
	for _, l := range strings.Split(word, "") {
		if have[l] == 0 {
			return false
		}
		have[l]--
	}
	return true
}

// State is one Word Maker round. The wheel order is derived from seed and
// the shuffle count so that shuffling stays a pure transition.
type State struct {
	round.Scorecard
	cfg      Config
	seed     int64
	shuffles int
	wheel    []string
	picked   []int
	found    []string
	bonus    []string
	coins    int
	hints    int
	phase    round.Phase
}

func Generate(cfg Config, rng *rand.Rand) State {
	s := State{
		cfg:   cfg,
		seed:  rng.Int63(),
		coins: StartCoins,
		hints: StartHints,
	}
	s.wheel = s.order()
	return s
}

func (s State) order() []string {
	return generate.Shuffle(rand.New(rand.NewSource(s.seed+int64(s.shuffles))), s.cfg.Letters)
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "wordmaker",
		Title:       "Word Maker",
		Emoji:       "🔠",
		Description: "Build words from the letter wheel to fill the puzzle.",
		Category:    round.CategoryLanguage,
		Difficulty:  round.Medium,
		MaxLevel:    MaxLevel,
		Input:       round.InputType,
	},
	Resolve:  Resolve,
	Generate: Generate,
}

func NewSession(rng *rand.Rand, timers round.Timers, opts ...round.Option) round.Session {
	return round.NewController(Game, rng, timers, opts...)
}

// Carry keeps the coins and hints of the previous round.
func (s State) Carry(prev State) State {
	s.coins = prev.coins
	s.hints = prev.hints
	return s
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
	case round.EventSelect:
		return s.toggle(ev.Index), nil
	case round.EventLetter:
		return s.typeLetter(ev.Letter)
	case round.EventErase:
		if len(s.picked) > 0 {
			s.picked = slices.Clone(s.picked[:len(s.picked)-1])
		}
		return s, nil
	case round.EventSubmit:
		return s.submit()
	case round.EventShuffle:
		return s.shuffle()
	case round.EventHint:
		return s.hint()
	}
	return s, nil
}

// toggle picks wheel tile i, or drops it when it is already picked.
func (s State) toggle(i int) State {
	if i < 0 || i >= len(s.wheel) {
		return s
	}
	if at := slices.Index(s.picked, i); at >= 0 {
		s.picked = slices.Delete(slices.Clone(s.picked), at, at+1)
		return s
	}
	s.picked = append(slices.Clone(s.picked), i)
	return s
}

// typeLetter picks the first free wheel tile showing r.
func (s State) typeLetter(r rune) (State, []round.Effect) {
	letter := string(unicode.ToUpper(r))
	for i, l := range s.wheel {
		if l == letter && !slices.Contains(s.picked, i) {
			s.picked = append(slices.Clone(s.picked), i)
			return s, nil
		}
	}
	return s, []round.Effect{round.Reject("Letter not available", "No free "+letter+" on the wheel.")}
}

// Word is the word spelled by the picked tiles.
func (s State) Word() string {
	var b strings.Builder
	for _, i := range s.picked {
		b.WriteString(s.wheel[i])
	}
	return b.String()
}

func (s State) submit() (State, []round.Effect) {
	word := s.Word()
	if len(word) < MinWordLength {
		return s, []round.Effect{round.Reject("Too short", "Words must be at least 3 letters long.")}
	}
	s.picked = nil

	required := slices.ContainsFunc(s.cfg.Required, func(w assets.PlacedWord) bool { return w.Word == word })
	switch {
	case slices.Contains(s.found, word) || slices.Contains(s.bonus, word):
		return s, []round.Effect{round.Reject("Already found", "You've already found this word.")}

	case required:
		var eff round.Effect
		s.found = append(slices.Clone(s.found), word)
		s.coins += requiredCoins
		s.Scorecard, eff = s.Award(10 * len(word))
		effects := []round.Effect{eff, round.Inform("Great!", "Found required word: "+word)}
		if len(s.found) == len(s.cfg.Required) {
			s.phase = round.PhaseResult
			s.Scorecard = s.Finish(round.OutcomeSuccess)
			effects = append(effects, round.Inform("Level complete!", "Every required word found."))
		}
		return s, effects

	case slices.Contains(s.cfg.Bonus, word):
		var eff round.Effect
		s.bonus = append(slices.Clone(s.bonus), word)
		s.coins += bonusCoins
		s.Scorecard, eff = s.Award(15 * len(word))
		return s, []round.Effect{eff, round.Inform("Bonus!", "Found bonus word: "+word)}
	}
	return s, []round.Effect{round.Reject("Not a valid word", "This word is not in the puzzle.")}
}

func (s State) shuffle() (State, []round.Effect) {
	if s.coins < ShuffleCost {
		return s, []round.Effect{round.Reject("Not enough coins", "Need 10 coins to shuffle")}
	}
	s.coins -= ShuffleCost
	s.shuffles++
	s.wheel = s.order()
	s.picked = nil
	return s, []round.Effect{round.Inform("Letters shuffled!", "Spent 10 coins")}
}

func (s State) hint() (State, []round.Effect) {
	if s.hints <= 0 {
		return s, []round.Effect{round.Reject("No hints left", "Use coins to buy more hints")}
	}
	for _, w := range s.cfg.Required {
		if !slices.Contains(s.found, w.Word) {
			s.hints--
			return s, []round.Effect{round.Inform("Hint", "Try: "+w.Clue)}
		}
	}
	return s, nil
}

func (s State) Phase() round.Phase { return s.phase }

// Wheel returns the letters in their current order.
func (s State) Wheel() []string { return slices.Clone(s.wheel) }

// Found returns the required words found so far.
func (s State) Found() []string { return slices.Clone(s.found) }

// Bonus returns the bonus words found so far.
func (s State) Bonus() []string { return slices.Clone(s.bonus) }

func (s State) Coins() int { return s.coins }
func (s State) Hints() int { return s.hints }

func (s State) View() round.View {
	board := make([][]round.Tile, 0, len(s.cfg.Required))
	clues := make([]string, 0, len(s.cfg.Required))
	for _, w := range s.cfg.Required {
		clues = append(clues, "- "+w.Clue)
		solved := slices.Contains(s.found, w.Word)
		row := make([]round.Tile, 0, len(w.Word))
		for _, l := range strings.Split(w.Word, "") {
			if solved {
				row = append(row, round.Tile{Glyph: l, Mark: round.MarkCorrect})
			} else {
				row = append(row, round.Tile{Glyph: "_", Mark: round.MarkHidden})
			}
		}
		board = append(board, row)
	}

	wheel := make([]round.Tile, len(s.wheel))
	for i, l := range s.wheel {
		wheel[i] = round.Tile{Glyph: l}
		if slices.Contains(s.picked, i) {
			wheel[i].Mark = round.MarkSelected
		}
	}

	v := round.View{
		Prompt:  "Make words from the wheel",
		Board:    board,
		RowNotes: clues,
		Choices:  wheel,
		Entry:   s.Word(),
		Slots:   len(s.wheel),
		Seconds: -1,
		Counters: []round.Counter{
			{Label: "Coins", Value: s.coins},
			{Label: "Hints", Value: s.hints},
			{Label: "Bonus", Value: len(s.bonus)},
		},
	}
	if len(s.bonus) > 0 {
		v.Status = "Bonus: " + strings.Join(s.bonus, " ")
	}
	if s.Done() {
		v.Status = "Level complete! " + strconv.Itoa(len(s.found)) + " words found"
	}
	return v
}

// Package alphabet is Alphabet Order: the round shows a handful of letters
// and the player picks them from a larger pool in alphabetical order.
package alphabet

import (
	"math/rand"
	"slices"
	"strings"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const MaxLevel = 20

// Config is the resolved difficulty of one level.
type Config struct {
	Level int
	Size  int // letters to sort
	Pool  int // letters offered
}

// Resolve grows the sort from 4 letters to 15 and the pool from 8 to the
// whole alphabet.
func Resolve(level int) Config {
	return Config{
		Level: level,
		Size:  min(4+level, 15),
		Pool:  min(8+level, 26),
	}
}

// State is one Alphabet Order round.
type State struct {
	round.Scorecard
	cfg     Config
	pool    []string
	letters []string
	picked  []string
	phase   round.Phase
}

// Generate samples the pool from A-Z and the round's letters from the pool.
func Generate(cfg Config, rng *rand.Rand) State {
	pool := generate.Sample(rng, assets.Alphabet, cfg.Pool)
	return State{
		cfg:     cfg,
		pool:    pool,
		letters: generate.Sample(rng, pool, cfg.Size),
	}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "alphabet",
		Title:       "Alphabet Order",
		Emoji:       "🔤",
		Description: "Pick the shown letters in alphabetical order.",
		Category:    round.CategoryLanguage,
		Difficulty:  round.Medium,
		MaxLevel:    MaxLevel,
		Input:       round.InputLetter,
	},
	Resolve:  Resolve,
	Generate: Generate,
}

// NewSession returns a controller for Alphabet Order.
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
	var letter string
	switch ev.Kind {
	case round.EventSelect:
		if ev.Index < 0 || ev.Index >= len(s.pool) {
			return s, nil
		}
		letter = s.pool[ev.Index]
	case round.EventLetter:
		letter = strings.ToUpper(string(ev.Letter))
		if !slices.Contains(s.pool, letter) {
			return s, []round.Effect{round.Reject("Not in the pool", letter+" is not on offer this round.")}
		}
	case round.EventErase:
		if len(s.picked) > 0 {
			s.picked = slices.Clone(s.picked[:len(s.picked)-1])
		}
		return s, nil
	default:
		return s, nil
	}
	if slices.Contains(s.picked, letter) {
		return s, nil
	}

	s.picked = append(slices.Clone(s.picked), letter)
	if len(s.picked) < len(s.letters) {
		return s, nil
	}

	s.phase = round.PhaseResult
	if slices.Equal(s.picked, s.Answer()) {
		var eff round.Effect
		s.Scorecard, eff = s.Award(100 + 5*s.cfg.Level)
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		return s, []round.Effect{eff, round.Inform("Perfect order!", "Every letter in place.")}
	}
	s.Scorecard = s.Finish(round.OutcomeFail)
	return s, []round.Effect{round.Reject("Out of order", "The order was "+strings.Join(s.Answer(), " ")+".")}
}

// Answer is the round's letters sorted.
func (s State) Answer() []string {
	out := slices.Clone(s.letters)
	slices.Sort(out)
	return out
}

func (s State) Phase() round.Phase { return s.phase }

// Letters returns the letters to sort in the order they are shown.
func (s State) Letters() []string { return slices.Clone(s.letters) }

// Pool returns the offered letters.
func (s State) Pool() []string { return slices.Clone(s.pool) }

func (s State) View() round.View {
	shown := make([]round.Tile, len(s.letters))
	for i, l := range s.letters {
		shown[i] = round.Tile{Glyph: l}
	}
	slots := make([]round.Tile, len(s.letters))
	for i := range slots {
		slots[i] = round.Tile{Glyph: "_", Mark: round.MarkHidden}
		if i < len(s.picked) {
			slots[i] = round.Tile{Glyph: s.picked[i], Mark: round.MarkSelected}
		}
	}
	if r, ok := s.Result(); ok {
		mark := round.MarkCorrect
		if r.Outcome != round.OutcomeSuccess {
			mark = round.MarkWrong
		}
		for i := range slots {
			slots[i].Mark = mark
		}
	}

	choices := make([]round.Tile, len(s.pool))
	for i, l := range s.pool {
		choices[i] = round.Tile{Glyph: l}
		if slices.Contains(s.picked, l) {
			choices[i].Mark = round.MarkDisabled
		}
	}

	return round.View{
		Prompt:  "Pick these letters in alphabetical order",
		Board:   [][]round.Tile{shown, slots},
		Choices: choices,
		Seconds: -1,
		Status:  statusLine(s),
	}
}

func statusLine(s State) string {
	r, ok := s.Result()
	switch {
	case !ok:
		return ""
	case r.Outcome == round.OutcomeSuccess:
		return "Success!"
	default:
		return "Not quite. Answer: " + strings.Join(s.Answer(), " ")
	}
}

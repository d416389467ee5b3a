// Package memorycards is the classic pairs game: flip two cards at a time
// and clear the grid by finding every match.
package memorycards

import (
	"math/rand"
	"slices"
	"time"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const (
	MaxLevel = 20

	matchDelay    = 500 * time.Millisecond
	mismatchDelay = 1000 * time.Millisecond
)

// Config is the resolved grid for one level.
type Config struct {
	Level int
	Rows  int
	Cols  int
}

// Pairs is how many matching pairs the grid holds.
func (c Config) Pairs() int { return c.Rows * c.Cols / 2 }

func Resolve(level int) Config {
	cfg := Config{Level: level}
	switch {
	case level <= 4:
		cfg.Rows, cfg.Cols = 2, 2
	case level <= 8:
		cfg.Rows, cfg.Cols = 2, 3
	case level <= 12:
		cfg.Rows, cfg.Cols = 3, 4
	case level <= 16:
		cfg.Rows, cfg.Cols = 4, 4
	default:
		cfg.Rows, cfg.Cols = 4, 5
	}
	return cfg
}

// Card is one cell of the grid.
type Card struct {
	Face    string
	Up      bool
	Matched bool
}

// State is one Memory Cards round.
type State struct {
	round.Scorecard
	cfg     Config
	cards   []Card
	flipped []int
	matched int
	moves   int
	phase   round.Phase
}

// Generate deals two of each sampled face, plus one unmatched filler when
// the grid has an odd number of cells.
func Generate(cfg Config, rng *rand.Rand) State {
	faces := generate.Shuffle(rng, assets.CardSymbols)
	pairs := faces[:cfg.Pairs()]
	deck := make([]string, 0, cfg.Rows*cfg.Cols)
	deck = append(deck, pairs...)
	deck = append(deck, pairs...)
	if cfg.Rows*cfg.Cols%2 == 1 {
		deck = append(deck, faces[cfg.Pairs()])
	}

	cards := make([]Card, 0, len(deck))
	for _, face := range generate.Shuffle(rng, deck) {
		cards = append(cards, Card{Face: face})
	}
	return State{cfg: cfg, cards: cards}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "memorycards",
		Title:       "Memory Cards",
		Emoji:       "🃏",
		Description: "Flip cards two at a time and find every pair.",
		Category:    round.CategoryMemory,
		Difficulty:  round.Medium,
		MaxLevel:    MaxLevel,
		Input:       round.InputIndex,
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
	switch {
	case ev.Kind == round.EventSelect && s.phase == round.PhaseInput && !s.Done():
		return s.flip(ev.Index)
	case ev.Kind == round.EventTimer && ev.Timer == round.TimerAdvance && s.phase == round.PhaseReveal:
		return s.settle()
	}
	return s, nil
}

func (s State) flip(i int) (State, []round.Effect) {
	if i < 0 || i >= len(s.cards) || s.cards[i].Up || s.cards[i].Matched {
		return s, nil
	}
	s.cards = slices.Clone(s.cards)
	s.cards[i].Up = true
	s.flipped = append(slices.Clone(s.flipped), i)
	if len(s.flipped) < 2 {
		return s, nil
	}

	s.moves++
	s.phase = round.PhaseReveal
	if s.pairUp() {
		return s, []round.Effect{round.Schedule(round.TimerAdvance, matchDelay)}
	}
	return s, []round.Effect{round.Schedule(round.TimerAdvance, mismatchDelay)}
}

func (s State) pairUp() bool {
	return len(s.flipped) == 2 && s.cards[s.flipped[0]].Face == s.cards[s.flipped[1]].Face
}

// settle resolves the two face-up cards once the reveal delay is over.
func (s State) settle() (State, []round.Effect) {
	match := s.pairUp()
	s.cards = slices.Clone(s.cards)
	for _, i := range s.flipped {
		if match {
			s.cards[i].Matched = true
		} else {
			s.cards[i].Up = false
		}
	}
	s.flipped = nil
	s.phase = round.PhaseInput
	if !match {
		return s, nil
	}

	s.matched++
	var eff round.Effect
	s.Scorecard, eff = s.Award((21 - s.cfg.Level) * 10)
	effects := []round.Effect{eff}
	if s.matched == s.cfg.Pairs() {
		s.phase = round.PhaseResult
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		effects = append(effects, round.Inform("Congratulations!", "Every pair found."))
	}
	return s, effects
}

func (s State) Phase() round.Phase { return s.phase }

// Cards returns the grid in row-major order.
func (s State) Cards() []Card { return slices.Clone(s.cards) }

// Moves counts pairs of flips.
func (s State) Moves() int { return s.moves }

func (s State) View() round.View {
	var board [][]round.Tile
	for r := range s.cfg.Rows {
		row := make([]round.Tile, 0, s.cfg.Cols)
		for c := range s.cfg.Cols {
			card := s.cards[r*s.cfg.Cols+c]
			switch {
			case card.Matched:
				row = append(row, round.Tile{Glyph: card.Face, Mark: round.MarkMatched})
			case card.Up:
				row = append(row, round.Tile{Glyph: card.Face, Mark: round.MarkSelected})
			default:
				row = append(row, round.Tile{Glyph: "?", Mark: round.MarkHidden})
			}
		}
		board = append(board, row)
	}

	v := round.View{
		Prompt:  "Find all matching pairs",
		Board:   board,
		Seconds: -1,
		Counters: []round.Counter{
			{Label: "Pairs", Value: s.matched},
			{Label: "Moves", Value: s.moves},
		},
	}
	if s.Done() {
		v.Status = "Congratulations!"
	}
	return v
}

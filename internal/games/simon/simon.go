// Package simon is Simon Pattern: watch cells of a 3x3 pad light up, then
// press them back in order. A wrong press replays the whole pattern.
package simon

import (
	"math/rand"
	"slices"
	"strconv"
	"time"

	"mindful-arcade/assets"
	"mindful-arcade/internal/round"
)

const (
	MaxLevel = 20

	frame = 700 * time.Millisecond
	pause = 700 * time.Millisecond
)

// Config is the resolved difficulty of one level.
type Config struct {
	Level  int
	Length int
	Pad    int
}

func Resolve(level int) Config {
	n := level
	switch {
	case level < 5:
		n = 3 + level
	case level < 10:
		n = 7 + (level-5)/2
	}
	return Config{Level: level, Length: n, Pad: assets.SimonPadSize}
}

// State is one Simon Pattern round.
type State struct {
	round.Scorecard
	cfg     Config
	pattern []int
	user    []int
	phase   round.Phase
	step    int // playback frame, -1 before the first
	mistake bool
	replays int
}

// Generate draws the pattern, cells may repeat.
func Generate(cfg Config, rng *rand.Rand) State {
	pattern := make([]int, cfg.Length)
	for i := range pattern {
		pattern[i] = rng.Intn(cfg.Pad)
	}
	return State{cfg: cfg, pattern: pattern}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "simon",
		Title:       "Simon Pattern",
		Emoji:       "🟨",
		Description: "Watch the pad light up and repeat the pattern.",
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
	return s.playback()
}

func (s State) playback() (State, []round.Effect) {
	s.phase = round.PhaseShow
	s.step = -1
	s.user = nil
	s.mistake = false
	return s, []round.Effect{round.Schedule(round.TimerStep, frame)}
}

func (s State) Apply(ev round.Event) (State, []round.Effect) {
	switch {
	case ev.Kind == round.EventTimer && ev.Timer == round.TimerStep && s.phase == round.PhaseShow:
		s.step++
		if s.step >= len(s.pattern) {
			s.phase = round.PhaseInput
			return s, nil
		}
		return s, []round.Effect{round.Schedule(round.TimerStep, frame)}

	case ev.Kind == round.EventTimer && ev.Timer == round.TimerAdvance && s.phase == round.PhaseReveal:
		s.replays++
		return s.playback()

	case ev.Kind == round.EventSelect && s.phase == round.PhaseInput && !s.Done():
		return s.press(ev.Index)
	}
	return s, nil
}

func (s State) press(cell int) (State, []round.Effect) {
	if cell < 0 || cell >= s.cfg.Pad {
		return s, nil
	}
	if s.pattern[len(s.user)] != cell {
		s.phase = round.PhaseReveal
		s.mistake = true
		return s, []round.Effect{
			round.Schedule(round.TimerAdvance, pause),
			round.Reject("Oops!", "Watch the pattern again."),
		}
	}

	s.user = append(slices.Clone(s.user), cell)
	if len(s.user) < len(s.pattern) {
		return s, nil
	}
	s.phase = round.PhaseResult
	var eff round.Effect
	s.Scorecard, eff = s.Award(10 * s.cfg.Level)
	s.Scorecard = s.Finish(round.OutcomeSuccess)
	return s, []round.Effect{eff, round.Inform("Pattern complete!", "Every cell in order.")}
}

func (s State) Phase() round.Phase { return s.phase }

// Pattern returns the cells to repeat.
func (s State) Pattern() []int { return slices.Clone(s.pattern) }

// User returns the cells pressed correctly so far.
func (s State) User() []int { return slices.Clone(s.user) }

// Lit is the cell highlighted by playback, or -1.
func (s State) Lit() int {
	if s.phase != round.PhaseShow || s.step < 0 || s.step >= len(s.pattern) {
		return -1
	}
	return s.pattern[s.step]
}

func (s State) View() round.View {
	const side = 3
	lit := s.Lit()
	var board [][]round.Tile
	for r := 0; r*side < s.cfg.Pad; r++ {
		var row []round.Tile
		for c := 0; c < side && r*side+c < s.cfg.Pad; c++ {
			cell := r*side + c
			t := round.Tile{Glyph: strconv.Itoa(cell + 1)}
			switch {
			case cell == lit:
				t.Mark = round.MarkLit
			case s.mistake:
				t.Mark = round.MarkWrong
			case s.phase == round.PhaseShow:
				t.Mark = round.MarkDisabled
			}
			row = append(row, t)
		}
		board = append(board, row)
	}

	v := round.View{
		Board:    board,
		Seconds:  -1,
		Counters: []round.Counter{
			{Label: "Step", Value: len(s.user)},
			{Label: "Length", Value: len(s.pattern)},
			{Label: "Replays", Value: s.replays},
		},
	}
	switch {
	case s.phase == round.PhaseShow:
		v.Prompt = "Watch the pattern!"
	case s.mistake:
		v.Prompt = "Oops! Watch again..."
	case s.Done():
		v.Prompt = "Pattern complete!"
		v.Status = "Success!"
	default:
		v.Prompt = "Repeat the pattern"
	}
	return v
}

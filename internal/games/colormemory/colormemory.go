// Package colormemory is Advanced Color Memory: memorize a sequence of
// colors, then repeat it from the palette before the clock runs out.
package colormemory

import (
	"math/rand"
	"slices"
	"time"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const (
	MaxLevel = 15

	tick   = time.Second
	reveal = 400 * time.Millisecond
)

// Config is the resolved difficulty of one level. Times are in seconds.
type Config struct {
	Level          int
	SequenceLength int
	Palette        int
	VisualizeTime  int
	TimeLimit      int
}

func Resolve(level int) Config {
	n := generate.Step(3, level, 1, 2, 9)
	return Config{
		Level:          level,
		SequenceLength: n,
		Palette:        generate.Step(4, level, 0, 2, len(assets.MemoryColors)),
		VisualizeTime:  generate.Floor(3+n, 5),
		TimeLimit:      generate.Floor(7+n, 10),
	}
}

// State is one Advanced Color Memory round.
type State struct {
	round.Scorecard
	cfg      Config
	palette  []assets.Color
	sequence []assets.Color
	choices  []assets.Color
	input    []assets.Color
	phase    round.Phase
	seconds  int
}

// Generate samples the palette and draws the sequence from it with
// repetition.
func Generate(cfg Config, rng *rand.Rand) State {
	palette := generate.Sample(rng, assets.MemoryColors, cfg.Palette)
	return State{
		cfg:      cfg,
		palette:  palette,
		sequence: generate.Draw(rng, palette, cfg.SequenceLength),
		choices:  generate.Shuffle(rng, palette),
	}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "colormemory",
		Title:       "Advanced Color Memory",
		Emoji:       "🎨",
		Description: "Memorize a color sequence and repeat it in time.",
		Category:    round.CategoryMemory,
		Difficulty:  round.Hard,
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
	s.phase = round.PhaseShow
	s.seconds = s.cfg.VisualizeTime
	return s, []round.Effect{round.Schedule(round.TimerTick, tick)}
}

func (s State) Apply(ev round.Event) (State, []round.Effect) {
	switch {
	case ev.Kind == round.EventTimer:
		return s.onTimer(ev.Timer)
	case ev.Kind == round.EventSelect && s.phase == round.PhaseInput && !s.Done():
		return s.pick(ev.Index)
	}
	return s, nil
}

func (s State) onTimer(name round.TimerName) (State, []round.Effect) {
	switch {
	case name == round.TimerTick && s.phase == round.PhaseShow:
		s.seconds--
		if s.seconds > 0 {
			return s, []round.Effect{round.Schedule(round.TimerTick, tick)}
		}
		s.phase = round.PhaseInput
		s.seconds = s.cfg.TimeLimit
		return s, []round.Effect{round.Schedule(round.TimerTick, tick)}

	case name == round.TimerTick && s.phase == round.PhaseInput:
		s.seconds--
		if s.seconds > 0 {
			return s, []round.Effect{round.Schedule(round.TimerTick, tick)}
		}
		s.phase = round.PhaseResult
		s.Scorecard = s.Finish(round.OutcomeTimeout)
		return s, []round.Effect{round.Reject("Time's up", "The sequence slipped away.")}

	case name == round.TimerAdvance && s.phase == round.PhaseReveal:
		s.phase = round.PhaseResult
		return s, nil
	}
	return s, nil
}

func (s State) pick(i int) (State, []round.Effect) {
	if i < 0 || i >= len(s.choices) {
		return s, nil
	}
	s.input = append(slices.Clone(s.input), s.choices[i])
	if len(s.input) < len(s.sequence) {
		return s, nil
	}

	s.phase = round.PhaseReveal
	effects := []round.Effect{round.Schedule(round.TimerAdvance, reveal)}
	if slices.Equal(s.input, s.sequence) {
		var eff round.Effect
		s.Scorecard, eff = s.Award(50 + 2*s.seconds)
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		return s, append(effects, eff, round.Inform("Perfect recall!", "Sequence matched."))
	}
	s.Scorecard = s.Finish(round.OutcomeFail)
	return s, append(effects, round.Reject("Not quite", "The sequence did not match."))
}

func (s State) Phase() round.Phase { return s.phase }

// Sequence returns the colors to remember.
func (s State) Sequence() []assets.Color { return slices.Clone(s.sequence) }

// Palette returns the colors sampled for this round.
func (s State) Palette() []assets.Color { return slices.Clone(s.palette) }

// Choices returns the palette in the order it is offered.
func (s State) Choices() []assets.Color { return slices.Clone(s.choices) }

var statusText = map[round.Outcome]string{
	round.OutcomeSuccess: "Perfect recall!",
	round.OutcomeFail:    "Wrong sequence",
	round.OutcomeTimeout: "Time's up!",
}

func swatch(c assets.Color, m round.Mark) round.Tile {
	return round.Tile{Glyph: c.Name, Color: c.Hex, Mark: m}
}

func (s State) View() round.View {
	v := round.View{Seconds: s.seconds}

	var board []round.Tile
	switch s.phase {
	case round.PhaseShow:
		v.Prompt = "Memorize the sequence"
		for _, c := range s.sequence {
			board = append(board, swatch(c, round.MarkPlain))
		}
	default:
		v.Prompt = "Repeat the sequence"
		for i := range s.sequence {
			switch {
			case i >= len(s.input):
				board = append(board, round.Tile{Glyph: "?", Mark: round.MarkHidden})
			case s.phase != round.PhaseInput && s.input[i] != s.sequence[i]:
				board = append(board, swatch(s.input[i], round.MarkWrong))
			case s.phase != round.PhaseInput:
				board = append(board, swatch(s.input[i], round.MarkCorrect))
			default:
				board = append(board, swatch(s.input[i], round.MarkSelected))
			}
		}
	}
	v.Board = [][]round.Tile{board}

	if s.phase == round.PhaseInput {
		for _, c := range s.choices {
			v.Choices = append(v.Choices, swatch(c, round.MarkPlain))
		}
	}
	if s.phase != round.PhaseShow && s.phase != round.PhaseInput {
		v.Seconds = -1
		answer := make([]round.Tile, len(s.sequence))
		for i, c := range s.sequence {
			answer[i] = swatch(c, round.MarkPlain)
		}
		v.Board = append(v.Board, answer)
		if r, ok := s.Result(); ok {
			v.Status = statusText[r.Outcome]
		}
	}
	return v
}

// Package focus is Focus Challenge: find the named color among the swatches
// before the clock runs out.
package focus

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

	tick = time.Second

	wrongPenalty   = -10
	timeoutPenalty = -20
)

// Config is the resolved difficulty of one level. TimeLimit is in seconds
// and is the one field that tightens as the level rises.
type Config struct {
	Level     int
	Options   int
	TimeLimit int
}

func Resolve(level int) Config {
	return Config{
		Level:     level,
		Options:   generate.Step(4, level, 1, 2, len(assets.FocusColors)),
		TimeLimit: generate.Floor(10-(level-1)/3, 3),
	}
}

// State is one Focus Challenge round.
type State struct {
	round.Scorecard
	cfg      Config
	options  []assets.Color
	target   int
	selected int
	seconds  int
	phase    round.Phase
}

func Generate(cfg Config, rng *rand.Rand) State {
	options := generate.Sample(rng, assets.FocusColors, cfg.Options)
	return State{
		cfg:      cfg,
		options:  options,
		target:   rng.Intn(len(options)),
		selected: -1,
	}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "focus",
		Title:       "Focus Challenge",
		Emoji:       "🎯",
		Description: "Find the named color before time runs out.",
		Category:    round.CategoryFocus,
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
	s.phase = round.PhaseInput
	s.seconds = s.cfg.TimeLimit
	return s, []round.Effect{round.Schedule(round.TimerTick, tick)}
}

func (s State) Apply(ev round.Event) (State, []round.Effect) {
	if s.Done() || s.phase != round.PhaseInput {
		return s, nil
	}
	switch ev.Kind {
	case round.EventTimer:
		if ev.Timer != round.TimerTick {
			return s, nil
		}
		s.seconds--
		if s.seconds > 0 {
			return s, []round.Effect{round.Schedule(round.TimerTick, tick)}
		}
		return s.finish(round.OutcomeTimeout, timeoutPenalty,
			round.Reject("Time's up!", "The color was "+s.Target().Name+"."))

	case round.EventSelect:
		if ev.Index < 0 || ev.Index >= len(s.options) {
			return s, nil
		}
		s.selected = ev.Index
		if ev.Index == s.target {
			bonus := max(5*s.seconds, 10)
			return s.finish(round.OutcomeSuccess, 20*s.cfg.Level+bonus,
				round.Inform("Excellent focus!", "Found it."))
		}
		return s.finish(round.OutcomeFail, wrongPenalty,
			round.Reject("Incorrect!", "The color was "+s.Target().Name+"."))
	}
	return s, nil
}

func (s State) finish(o round.Outcome, points int, notice round.Effect) (State, []round.Effect) {
	var eff round.Effect
	s.phase = round.PhaseResult
	s.Scorecard, eff = s.Award(points)
	s.Scorecard = s.Finish(o)
	return s, []round.Effect{eff, notice}
}

func (s State) Phase() round.Phase { return s.phase }

// Options returns the swatches on offer.
func (s State) Options() []assets.Color { return slices.Clone(s.options) }

// Target is the color to find.
func (s State) Target() assets.Color { return s.options[s.target] }

func (s State) View() round.View {
	choices := make([]round.Tile, len(s.options))
	for i, c := range s.options {
		choices[i] = round.Tile{Color: c.Hex}
		if !s.Done() {
			continue
		}
		switch {
		case i == s.target:
			choices[i].Mark = round.MarkCorrect
			choices[i].Glyph = "✓"
		case i == s.selected:
			choices[i].Mark = round.MarkWrong
			choices[i].Glyph = "✗"
		}
	}
	v := round.View{
		Prompt:  "Find this color: " + s.Target().Name,
		Choices: choices,
		Seconds: s.seconds,
	}
	if r, ok := s.Result(); ok {
		v.Seconds = -1
		switch r.Outcome {
		case round.OutcomeSuccess:
			v.Status = "Excellent focus!"
		case round.OutcomeTimeout:
			v.Status = "Time's up! The correct color was " + s.Target().Name
		default:
			v.Status = "Incorrect! The correct color was " + s.Target().Name
		}
	}
	return v
}

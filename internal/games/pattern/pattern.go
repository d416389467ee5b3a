// Package pattern is Pattern Recognition: spot what comes next in a number,
// shape or letter sequence.
package pattern

import (
	"math/rand"
	"slices"
	"strconv"

	"mindful-arcade/assets"
	"mindful-arcade/internal/generate"
	"mindful-arcade/internal/round"
)

const MaxLevel = 20

// Kind is the family of sequence a level draws from.
type Kind uint8

const (
	Arithmetic Kind = iota
	Geometric
	Shape
	Letter
)

func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	case Shape:
		return "shape"
	default:
		return "letter"
	}
}

// Config is the resolved difficulty of one level.
type Config struct {
	Level   int
	Kind    Kind
	Choices int
}

// Resolve moves to a harder kind every five levels.
func Resolve(level int) Config {
	return Config{
		Level:   level,
		Kind:    Kind(generate.Step(0, level, 1, 5, int(Letter))),
		Choices: 3,
	}
}

// Puzzle is a generated sequence with its precomputed answer.
type Puzzle struct {
	Prompt   string
	Sequence []string
	Answer   string
	Choices  []string
}

// State is one Pattern Recognition round.
type State struct {
	round.Scorecard
	cfg      Config
	puzzle   Puzzle
	selected int
	phase    round.Phase
}

func Generate(cfg Config, rng *rand.Rand) State {
	var p Puzzle
	switch cfg.Kind {
	case Arithmetic:
		p = arithmetic(rng, cfg.Choices)
	case Geometric:
		p = geometric(rng, cfg.Choices)
	case Shape:
		p = shapes(rng, cfg)
	default:
		p = letters(rng, cfg.Choices)
	}
	return State{cfg: cfg, puzzle: p, selected: -1}
}

func arithmetic(rng *rand.Rand, want int) Puzzle {
	start := rng.Intn(10) + 1
	step := rng.Intn(5) + 1
	answer := start + 4*step
	return numeric(rng, "What comes next in the arithmetic sequence?",
		[]int{start, start + step, start + 2*step, start + 3*step},
		answer, []int{answer + step, answer - step, answer + 2*step}, want)
}

func geometric(rng *rand.Rand, want int) Puzzle {
	start := rng.Intn(5) + 2
	ratio := rng.Intn(3) + 2
	seq := []int{start, start * ratio, start * ratio * ratio, start * ratio * ratio * ratio}
	answer := seq[3] * ratio
	return numeric(rng, "What comes next in the geometric sequence?",
		seq, answer, []int{answer * ratio, answer / ratio, answer + start}, want)
}

func numeric(rng *rand.Rand, prompt string, seq []int, answer int, wrong []int, want int) Puzzle {
	shown := make([]string, len(seq))
	for i, n := range seq {
		shown[i] = strconv.Itoa(n)
	}
	distractors := make([]string, len(wrong))
	for i, n := range wrong {
		distractors[i] = strconv.Itoa(n)
	}
	a := strconv.Itoa(answer)
	return Puzzle{
		Prompt:   prompt,
		Sequence: shown,
		Answer:   a,
		Choices:  generate.Choices(rng, a, distractors, want),
	}
}

// shapes repeats a short motif and stops at a random point within it.
func shapes(rng *rand.Rand, cfg Config) Puzzle {
	motif := generate.Sample(rng, assets.Shapes, min(3+cfg.Level/5, 4))
	repeats := rng.Intn(2) + 2
	n := repeats*len(motif) + rng.Intn(len(motif))
	seq := make([]string, n)
	for i := range seq {
		seq[i] = motif[i%len(motif)]
	}
	answer := motif[n%len(motif)]
	var wrong []string
	for _, s := range generate.Shuffle(rng, assets.Shapes) {
		if s != answer {
			wrong = append(wrong, s)
		}
	}
	return Puzzle{
		Prompt:   "What shape comes next in the pattern?",
		Sequence: seq[len(seq)-4:],
		Answer:   answer,
		Choices:  generate.Choices(rng, answer, wrong, cfg.Choices),
	}
}

func letters(rng *rand.Rand, want int) Puzzle {
	start := rng.Intn(20)
	step := rng.Intn(3) + 1
	at := func(i int) string { return assets.Alphabet[(start+i*step)%26] }
	answer := at(4)
	return Puzzle{
		Prompt:   "What letter comes next in the alphabetical pattern?",
		Sequence: []string{at(0), at(1), at(2), at(3)},
		Answer:   answer,
		Choices:  generate.Choices(rng, answer, []string{at(5), at(3)}, want),
	}
}

var Game = round.Leveled[Config, State]{
	Info: round.Info{
		ID:          "pattern",
		Title:       "Pattern Recognition",
		Emoji:       "🧩",
		Description: "Find what comes next in the sequence.",
		Category:    round.CategoryLogic,
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
	return s, nil
}

func (s State) Apply(ev round.Event) (State, []round.Effect) {
	if s.Done() || ev.Kind != round.EventSelect {
		return s, nil
	}
	if ev.Index < 0 || ev.Index >= len(s.puzzle.Choices) {
		return s, nil
	}
	s.selected = ev.Index
	s.phase = round.PhaseResult
	if s.puzzle.Choices[ev.Index] == s.puzzle.Answer {
		var eff round.Effect
		s.Scorecard, eff = s.Award(10 * s.cfg.Level)
		s.Scorecard = s.Finish(round.OutcomeSuccess)
		return s, []round.Effect{eff}
	}
	s.Scorecard = s.Finish(round.OutcomeFail)
	return s, []round.Effect{round.Reject("Not quite", "The answer was "+s.puzzle.Answer+".")}
}

func (s State) Phase() round.Phase { return s.phase }

// Puzzle returns the generated puzzle.
func (s State) Puzzle() Puzzle {
	p := s.puzzle
	p.Sequence = slices.Clone(p.Sequence)
	p.Choices = slices.Clone(p.Choices)
	return p
}

func (s State) View() round.View {
	row := make([]round.Tile, 0, len(s.puzzle.Sequence)+1)
	for _, item := range s.puzzle.Sequence {
		row = append(row, round.Tile{Glyph: item})
	}
	row = append(row, round.Tile{Glyph: "?", Mark: round.MarkHidden})

	choices := make([]round.Tile, len(s.puzzle.Choices))
	for i, c := range s.puzzle.Choices {
		choices[i] = round.Tile{Glyph: c}
		if !s.Done() {
			continue
		}
		switch {
		case c == s.puzzle.Answer:
			choices[i].Mark = round.MarkCorrect
		case i == s.selected:
			choices[i].Mark = round.MarkWrong
		default:
			choices[i].Mark = round.MarkDisabled
		}
	}

	v := round.View{
		Prompt:  s.puzzle.Prompt,
		Board:   [][]round.Tile{row},
		Choices: choices,
		Seconds: -1,
	}
	if r, ok := s.Result(); ok {
		v.Board[0][len(row)-1] = round.Tile{Glyph: s.puzzle.Answer, Mark: round.MarkCorrect}
		v.Status = "Correct!"
		if r.Outcome != round.OutcomeSuccess {
			v.Status = "Incorrect. Try again!"
		}
	}
	return v
}

package wordmaker

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindful-arcade/assets"
	"mindful-arcade/internal/round"
)

func TestResolveMakesRequiredWordsBuildable(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		cfg := Resolve(level)
		require.NotEmpty(t, cfg.Required)
		for _, w := range cfg.Required {
			assert.True(t, buildable(cfg.Letters, w.Word), "level %d: %s from %v", level, w.Word, cfg.Letters)
		}
		for _, w := range cfg.Bonus {
			assert.True(t, buildable(cfg.Letters, w), "level %d bonus %s", level, w)
		}
	}
}

func TestResolveWidensOnlyWhenNeeded(t *testing.T) {
	assert.Equal(t, []string{"C", "A", "T", "R", "E", "S"}, Resolve(1).Letters)

	cfg := Resolve(23) // SUNSHIN must also spell SUNSHINE
	assert.Equal(t, "SUNSHINE", strings.Join(cfg.Letters, ""))

	cfg = Resolve(50)
	assert.True(t, buildable(cfg.Letters, "MASTERPIECE"))
	assert.True(t, strings.HasPrefix(strings.Join(cfg.Letters, ""), "MASTERP"))
}

func TestResolveDropsUnbuildableBonus(t *testing.T) {
	cfg := Resolve(4)
	assert.NotContains(t, cfg.Bonus, "NESTS")
	assert.Contains(t, cfg.Bonus, "STERN")
	assert.Equal(t, Resolve(MaxLevel), Resolve(MaxLevel+10).withLevel(MaxLevel))
}

func (c Config) withLevel(level int) Config {
	c.Level = level
	return c
}

func newRound(t *testing.T, level int) State {
	t.Helper()
	s, effects := Generate(Resolve(level), rand.New(rand.NewSource(7))).Start()
	require.Empty(t, effects)
	assert.ElementsMatch(t, Resolve(level).Letters, s.Wheel())
	return s
}

func spell(s State, word string) (State, []round.Effect) {
	for _, r := range word {
		s, _ = s.Apply(round.Letter(r))
	}
	return s.Apply(round.Submit())
}

func noticeTitles(effects []round.Effect) []string {
	var out []string
	for _, e := range effects {
		if e.Kind == round.EffectNotice {
			out = append(out, e.Notice.Title)
		}
	}
	return out
}

func TestTooShortKeepsSelection(t *testing.T) {
	s := newRound(t, 1)
	s, effects := spell(s, "CA")
	assert.Equal(t, []string{"Too short"}, noticeTitles(effects))
	assert.Equal(t, "CA", s.Word())
}

func TestRequiredAndBonusWords(t *testing.T) {
	s := newRound(t, 1)

	s, effects := spell(s, "cat")
	assert.Contains(t, effects, round.Score(30))
	assert.Equal(t, StartCoins+5, s.Coins())
	assert.Empty(t, s.Word())

	s, effects = spell(s, "RACE")
	assert.Contains(t, effects, round.Score(60))
	assert.Equal(t, StartCoins+15, s.Coins())
	assert.Equal(t, []string{"RACE"}, s.Bonus())

	s, effects = spell(s, "CAT")
	assert.Equal(t, []string{"Already found"}, noticeTitles(effects))
	s, effects = spell(s, "RACE")
	assert.Equal(t, []string{"Already found"}, noticeTitles(effects))

	s, effects = spell(s, "SET")
	assert.Equal(t, []string{"Not a valid word"}, noticeTitles(effects))
	assert.Equal(t, StartCoins+15, s.Coins())
}

func TestAllRequiredWordsWin(t *testing.T) {
	s := newRound(t, 1)
	for _, w := range []string{"CAT", "ART", "CAR"} {
		s, _ = spell(s, w)
	}
	r, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, round.Result{Outcome: round.OutcomeSuccess, Delta: 90}, r)
	assert.Equal(t, round.PhaseResult, s.Phase())

	s2, effects := spell(s, "RACE")
	assert.Empty(t, effects)
	assert.Empty(t, s2.Bonus())
}

func TestMissingLetterRejected(t *testing.T) {
	s := newRound(t, 1)
	s, effects := s.Apply(round.Letter('Z'))
	assert.Equal(t, []string{"Letter not available"}, noticeTitles(effects))
	s, _ = s.Apply(round.Letter('C'))
	_, effects = s.Apply(round.Letter('C'))
	assert.Equal(t, []string{"Letter not available"}, noticeTitles(effects), "one C on the wheel")
}

func TestSelectTogglesAndEraseDropsLast(t *testing.T) {
	s := newRound(t, 1)
	s, _ = s.Apply(round.Select(0))
	s, _ = s.Apply(round.Select(1))
	s, _ = s.Apply(round.Select(2))
	s, _ = s.Apply(round.Select(1))
	assert.Equal(t, []int{0, 2}, s.picked)
	s, _ = s.Apply(round.Erase())
	assert.Equal(t, []int{0}, s.picked)
}

func TestShuffleCostsCoins(t *testing.T) {
	s := newRound(t, 1)
	s, _ = s.Apply(round.Letter('C'))
	before := s.Wheel()

	s, effects := s.Apply(round.ShuffleLetters())
	assert.Equal(t, []string{"Letters shuffled!"}, noticeTitles(effects))
	assert.Equal(t, StartCoins-ShuffleCost, s.Coins())
	assert.Empty(t, s.picked)
	assert.ElementsMatch(t, before, s.Wheel())

	s.coins = 5
	next, effects := s.Apply(round.ShuffleLetters())
	assert.Equal(t, []string{"Not enough coins"}, noticeTitles(effects))
	assert.Equal(t, s.Wheel(), next.Wheel())
	assert.Equal(t, 5, next.Coins())
}

func TestShuffleIsDeterministic(t *testing.T) {
	a := newRound(t, 10)
	b := newRound(t, 10)
	a, _ = a.Apply(round.ShuffleLetters())
	b, _ = b.Apply(round.ShuffleLetters())
	assert.Equal(t, a.Wheel(), b.Wheel())
}

func TestHintShowsFirstUnfoundClue(t *testing.T) {
	s := newRound(t, 1)
	s, _ = spell(s, "CAT")
	s, effects := s.Apply(round.Hint())
	require.Len(t, effects, 1)
	assert.Equal(t, "Try: Creative work", effects[0].Notice.Text)
	assert.Equal(t, StartHints-1, s.Hints())

	s.hints = 0
	_, effects = s.Apply(round.Hint())
	assert.Equal(t, []string{"No hints left"}, noticeTitles(effects))
}

func TestCoinsAndHintsCarryAcrossRounds(t *testing.T) {
	timers := nopTimers{}
	c := round.NewController(Game, rand.New(rand.NewSource(3)), timers)
	c.Start()
	for _, w := range []string{"CAT", "ART", "CAR"} {
		for _, r := range w {
			c.Handle(round.Letter(r))
		}
		c.Handle(round.Submit())
	}
	c.Handle(round.Hint())
	coins, hints := c.State().Coins(), c.State().Hints()
	require.Equal(t, StartCoins+15, coins)

	require.True(t, c.Advance())
	assert.Equal(t, coins, c.State().Coins())
	assert.Equal(t, hints, c.State().Hints())
	assert.Empty(t, c.State().Found())
}

func TestViewHidesUnfoundWords(t *testing.T) {
	s := newRound(t, 1)
	s, _ = spell(s, "ART")
	v := s.View()
	require.Len(t, v.Board, 3)
	assert.Equal(t, round.MarkHidden, v.Board[0][0].Mark)
	assert.Equal(t, round.Tile{Glyph: "A", Mark: round.MarkCorrect}, v.Board[1][0])
	assert.Equal(t, []string{"- Feline pet", "- Creative work", "- Vehicle"}, v.RowNotes)
	assert.True(t, slices.ContainsFunc(v.Counters, func(c round.Counter) bool {
		return c.Label == "Coins" && c.Value == StartCoins+5
	}))
}

func TestLevelTableIsEmbedded(t *testing.T) {
	assert.Len(t, assets.WordMakerLevels(), MaxLevel)
}

type nopTimers struct{}

func (nopTimers) Schedule(round.TimerName, uint64, time.Duration) {}
func (nopTimers) Cancel(round.TimerName)                          {}
func (nopTimers) CancelAll()                                      {}

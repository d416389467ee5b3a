package arcade

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zapcore"

	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/round"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init() // Init resets the size to 80x25
	ss.SetSize(80, 24)
	return ss
}

func key(r rune) tcell.Event { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func special(k tcell.Key) tcell.Event { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func typed(word string) []tcell.Event {
	var evs []tcell.Event
	for _, r := range word {
		evs = append(evs, key(r))
	}
	return evs
}

func newTestArcade(screen tcell.Screen, start string) *Arcade {
	return New(screen, Options{
		Rand:  rand.New(rand.NewSource(42)),
		Start: start,
		Now:   func() time.Time { return time.Unix(1_700_000_000, 0) },
	})
}

type driver struct {
	ch   chan tcell.Event
	errc chan error
}

// drive feeds events to the arcade loop one at a time. It fails the test if
// the loop returns before every event was consumed.
func drive(t *testing.T, a *Arcade, events []tcell.Event) driver {
	t.Helper()
	d := driver{ch: make(chan tcell.Event), errc: make(chan error, 1)}
	go func() { d.errc <- a.loop(context.Background(), d.ch) }()
	for i, ev := range events {
		select {
		case d.ch <- ev:
		case err := <-d.errc:
			t.Fatalf("loop returned after %d of %d events: %v", i, len(events), err)
		}
	}
	return d
}

// finish waits for the loop to exit. If it is still running after a second
// the screen is hung up; exited reports whether it had left on its own.
func (d driver) finish(t *testing.T) (exited bool, err error) {
	t.Helper()
	select {
	case err := <-d.errc:
		return true, err
	case <-time.After(time.Second):
	}
	close(d.ch)
	select {
	case err := <-d.errc:
		return false, err
	case <-time.After(5 * time.Second):
		t.Fatal("arcade loop did not return")
		return false, nil
	}
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, _, _, _ := s.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			b.WriteRune(mainc)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ─── play loop ────────────────────────────────────────────────────────────────

func TestWordleFailRetryAndQuit(t *testing.T) {
	screen := newSimScreen()
	a := newTestArcade(screen, "")

	events := []tcell.Event{key('8')} // Wordle is eighth in the picker
	for range 6 {
		events = append(events, typed("zzzzz")...)
		events = append(events, special(tcell.KeyEnter))
	}
	events = append(events,
		special(tcell.KeyEnter),  // try again
		special(tcell.KeyEscape), // back
		key('y'),
		key('q'), // quit
		key('y'),
		key(' '), // dismiss summary
	)

	exited, err := drive(t, a, events).finish(t)
	require.NoError(t, err)
	assert.True(t, exited, "loop should exit on its own")

	st, ok := a.RunLog().Stats("wordle")
	require.True(t, ok)
	assert.Equal(t, 1, st.Rounds)
	assert.Equal(t, 1, st.Fails)
	assert.Equal(t, 0, st.BestLevel)
}

func TestQuitWithoutRoundsSkipsSummary(t *testing.T) {
	a := newTestArcade(newSimScreen(), "")
	exited, err := drive(t, a, []tcell.Event{key('q'), key('y')}).finish(t)
	require.NoError(t, err)
	assert.True(t, exited)
	assert.Zero(t, a.RunLog().Rounds())
}

func TestQuitCancelledStaysInPicker(t *testing.T) {
	screen := newSimScreen()
	a := newTestArcade(screen, "")
	exited, err := drive(t, a, []tcell.Event{key('q'), key('n')}).finish(t)
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Contains(t, screenText(screen), "MINDFUL ARCADE")
}

func TestStartOpensGameDirectly(t *testing.T) {
	screen := newSimScreen()
	a := newTestArcade(screen, "scramble")
	_, err := drive(t, a, []tcell.Event{special(tcell.KeyCtrlT)}).finish(t)
	require.NoError(t, err)
	assert.Contains(t, screenText(screen), "Hint: It starts with")
}

func TestStartUnknownGame(t *testing.T) {
	a := newTestArcade(newSimScreen(), "chess")
	err := a.Run(context.Background())
	require.ErrorIs(t, err, catalog.ErrUnknownGame)
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := newTestArcade(newSimScreen(), "simon")
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.loop(ctx, make(chan tcell.Event)) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("arcade loop did not return")
	}
}

// ─── key mapping ──────────────────────────────────────────────────────────────

func TestKeyToCommand(t *testing.T) {
	cases := []struct {
		name string
		mode round.InputMode
		done bool
		ev   *tcell.EventKey
		cmd  Command
		want round.Event
	}{
		{"index digit", round.InputIndex, false, tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), CommandEvent, round.Select(2)},
		{"index letter", round.InputIndex, false, tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), CommandEvent, round.Select(11)},
		{"letter mode", round.InputLetter, false, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CommandEvent, round.Letter('Q')},
		{"type erase", round.InputType, false, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), CommandEvent, round.Erase()},
		{"index erase ignored", round.InputIndex, false, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), CommandNone, round.Event{}},
		{"type submit", round.InputType, false, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CommandEvent, round.Submit()},
		{"enter after result", round.InputType, true, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CommandContinue, round.Event{}},
		{"enter while picking", round.InputIndex, false, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CommandNone, round.Event{}},
		{"letters ignored after result", round.InputType, true, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), CommandNone, round.Event{}},
		{"shuffle", round.InputType, false, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), CommandEvent, round.ShuffleLetters()},
		{"hint", round.InputType, false, tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl), CommandEvent, round.Hint()},
		{"reset", round.InputIndex, true, tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), CommandReset, round.Event{}},
		{"back", round.InputIndex, false, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandBack, round.Event{}},
		{"help", round.InputType, false, tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), CommandHelp, round.Event{}},
		{"punctuation", round.InputType, false, tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone), CommandNone, round.Event{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ev := keyToCommand(tc.mode, tc.done, tc.ev)
			assert.Equal(t, tc.cmd, cmd)
			assert.Equal(t, tc.want, ev)
		})
	}
}

// ─── picker ───────────────────────────────────────────────────────────────────

func TestPickerNavigation(t *testing.T) {
	p := newPicker(catalog.Default())
	require.Len(t, p.games, 9)

	p.handle(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	assert.Equal(t, 8, p.sel, "k wraps to the bottom")
	p.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, 0, p.sel)

	p.handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.Equal(t, 1, p.tab)
	assert.Len(t, p.games, 3, "memory games")
	p.handle(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	assert.Equal(t, 0, p.tab)
	assert.Len(t, p.games, 9)

	action, id := p.handle(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone))
	assert.Equal(t, pickPlay, action)
	assert.Equal(t, "pattern", id)

	action, _ = p.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.Equal(t, pickQuit, action)
}

func TestPickerDigitOutOfRange(t *testing.T) {
	p := newPicker(catalog.Default())
	p.cycleTab(3) // Logic has a single game
	require.Len(t, p.games, 1)
	action, _ := p.handle(tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone))
	assert.Equal(t, pickNone, action)
}

// ─── run log ──────────────────────────────────────────────────────────────────

func TestRunLogRecord(t *testing.T) {
	l := NewRunLog(time.Unix(0, 0))
	info := round.Info{ID: "simon", Title: "Simon Pattern"}
	l.Record(info, round.Progress{Level: 1, Score: 10}, round.Result{Outcome: round.OutcomeSuccess, Delta: 10})
	l.Record(info, round.Progress{Level: 2, Score: 10}, round.Result{Outcome: round.OutcomeFail})
	l.Record(info, round.Progress{Level: 2, Score: 0}, round.Result{Outcome: round.OutcomeTimeout, Delta: -20})

	st, ok := l.Stats("simon")
	require.True(t, ok)
	assert.Equal(t, GameStats{Title: "Simon Pattern", Rounds: 3, Successes: 1, Fails: 1, Timeouts: 1, BestLevel: 1, BestScore: 10}, st)
	assert.Equal(t, map[string]int{"simon": 1}, l.Best())
	assert.Equal(t, 3, l.Rounds())

	lines := l.Summary(time.Unix(90, 0))
	require.Len(t, lines, 2)
	assert.Equal(t, "Played for 1m30s", lines[0])
	assert.Contains(t, lines[1], "Simon Pattern")

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, l.MarshalLogObject(enc))
	assert.Equal(t, 3, enc.Fields["rounds"])
	assert.Contains(t, enc.Fields, "simon")
}

// Package arcade is the interactive shell: a game picker and the play loop
// that feeds key presses and fired timers to a round controller.
package arcade

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/render"
	"mindful-arcade/internal/round"
)

// Options configures an Arcade.
type Options struct {
	Catalog  *catalog.Catalog // nil means catalog.Default()
	Settings catalog.Settings
	Rand     *rand.Rand // nil means seeded from the clock
	Log      *zap.Logger
	Start    string // game to open straight away, skipping the picker
	Now      func() time.Time
}

// Arcade runs the picker and games on one screen.
type Arcade struct {
	screen   tcell.Screen
	r        *render.Renderer
	cat      *catalog.Catalog
	rng      *rand.Rand
	settings catalog.Settings
	log      *zap.Logger
	start    string
	now      func() time.Time
	runs     *RunLog
}

// New creates an arcade for screen. The caller owns the screen: it must
// Init it before Run and Fini it afterwards.
func New(screen tcell.Screen, opts Options) *Arcade {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Arcade{
		screen:   screen,
		r:        render.NewRenderer(screen),
		cat:      opts.Catalog,
		rng:      opts.Rand,
		settings: opts.Settings,
		log:      opts.Log,
		start:    opts.Start,
		now:      opts.Now,
		runs:     NewRunLog(opts.Now()),
	}
}

// RunLog returns the session's round history.
func (a *Arcade) RunLog() *RunLog { return a.runs }

// Run blocks until the player quits, the screen closes or ctx is done.
func (a *Arcade) Run(ctx context.Context) error {
	if a.start != "" {
		if _, ok := a.cat.Lookup(a.start); !ok {
			return fmt.Errorf("start %q: %w", a.start, catalog.ErrUnknownGame)
		}
	}

	// Start an async input reader goroutine. It exits once the screen is
	// finalised.
	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go func() {
		defer close(eventCh)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	return a.loop(ctx, eventCh)
}

// loop runs the picker and games until the player quits.
func (a *Arcade) loop(ctx context.Context, eventCh <-chan tcell.Event) error {
	if a.start != "" {
		quit, err := a.play(ctx, a.start, eventCh)
		if quit || err != nil {
			return err
		}
	}

	p := newPicker(a.cat)
	for {
		a.r.DrawPicker(p.view(a.runs.Best()))
		a.screen.Show()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				action, id := p.handle(ev)
				switch action {
				case pickPlay:
					quit, err := a.play(ctx, id, eventCh)
					if quit || err != nil {
						return err
					}
				case pickHelp:
					a.r.DrawOverlay("Controls", pickerHelp)
					if !a.waitKey(eventCh) {
						return nil
					}
				case pickQuit:
					confirmed, open := a.confirm("Leave the arcade?", eventCh)
					if !open {
						return nil
					}
					if confirmed {
						a.showSummary(eventCh)
						return nil
					}
				}
			}
		}
	}
}

// play runs one game until the player backs out. quit is true when the
// screen closed underneath it.
func (a *Arcade) play(ctx context.Context, id string, eventCh <-chan tcell.Event) (quit bool, err error) {
	timerCh := make(chan round.Event, 8)
	sched := round.NewScheduler(timerCh)
	defer sched.Stop()

	sess, err := a.cat.Create(id, catalog.Deps{
		Rand:     a.rng,
		Timers:   sched,
		Settings: a.settings,
		Options: []round.Option{
			round.WithLogger(a.log),
			round.WithObserver(a.runs.Record),
		},
	})
	if err != nil {
		return true, err
	}
	a.log.Info("game opened", zap.String("game", id))
	defer a.log.Info("game closed", zap.String("game", id))
	sess.Start()

	for {
		a.r.DrawRound(render.FrameOf(sess))
		a.screen.Show()

		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case ev := <-timerCh:
			sess.Handle(ev)
		case ev, ok := <-eventCh:
			if !ok {
				return true, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				_, done := sess.Result()
				cmd, rev := keyToCommand(sess.Info().Input, done, ev)
				switch cmd {
				case CommandEvent:
					sess.Handle(rev)
				case CommandContinue:
					if !sess.Advance() {
						sess.Retry()
					}
				case CommandReset:
					sess.Reset()
				case CommandHelp:
					a.r.DrawOverlay("Controls", helpLines(sess.Info().Input))
					if !a.waitKey(eventCh) {
						return true, nil
					}
				case CommandBack:
					confirmed, open := a.confirm("Leave this game?", eventCh)
					if !open {
						return true, nil
					}
					if confirmed {
						return false, nil
					}
				}
			}
		}
	}
}

// confirm shows a yes/no prompt. open is false when the screen closed.
func (a *Arcade) confirm(prompt string, eventCh <-chan tcell.Event) (yes, open bool) {
	for {
		a.r.DrawConfirm(prompt)
		a.screen.Show()
		ev, ok := <-eventCh
		if !ok {
			return false, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true, true
			default:
				return false, true
			}
		}
	}
}

// waitKey blocks until any key. It reports false when the screen closed.
func (a *Arcade) waitKey(eventCh <-chan tcell.Event) bool {
	a.screen.Show()
	for {
		ev, ok := <-eventCh
		if !ok {
			return false
		}
		switch ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			return true
		}
	}
}

func (a *Arcade) showSummary(eventCh <-chan tcell.Event) {
	if a.runs.Rounds() == 0 {
		return
	}
	a.screen.Clear()
	a.r.DrawOverlay("Session", append(a.runs.Summary(a.now()), "", "  [any key to exit]"))
	a.waitKey(eventCh)
}

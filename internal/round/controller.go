package round

import (
	"math/rand"

	"go.uber.org/zap"
)

// maxNotices is how many recent notices a controller keeps for the HUD.
const maxNotices = 4

// Session is the game-agnostic face of a Controller used by the shell and
// the catalog.
type Session interface {
	Info() Info
	Start()
	Retry()
	Advance() bool
	Reset()
	Handle(ev Event)
	View() View
	Phase() Phase
	Progress() Progress
	Result() (Result, bool)
	Notices() []Notice
}

// Observer is told about every finished round exactly once.
type Observer func(info Info, p Progress, r Result)

// Option configures a Controller.
type Option func(*options)

type options struct {
	log      *zap.Logger
	observer Observer
}

// WithLogger sets the controller's logger. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithObserver registers fn for finished rounds.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// Controller owns one game's progress, its current round and that round's
// timers. It is not safe for concurrent use: the shell feeds it key presses
// and fired timers from a single goroutine.
type Controller[C any, S Machine[S]] struct {
	game     Leveled[C, S]
	rng      *rand.Rand
	timers   Timers
	log      *zap.Logger
	observer Observer

	progress Progress
	cfg      C
	state    S
	started  bool
	token    uint64
	reported bool
	notices  []Notice
}

// NewController returns a controller at level 1. Call Start to deal the
// first round.
func NewController[C any, S Machine[S]](game Leveled[C, S], rng *rand.Rand, timers Timers, opts ...Option) *Controller[C, S] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[C, S]{
		game:     game,
		rng:      rng,
		timers:   timers,
		log:      o.log.With(zap.String("game", game.Info.ID)),
		observer: o.observer,
		progress: Progress{Level: 1},
	}
}

func (c *Controller[C, S]) Info() Info { return c.game.Info }

// Start deals a fresh round for the current level.
func (c *Controller[C, S]) Start() {
	c.progress.Attempts = 1
	c.begin(c.game.Resolve(c.progress.Level))
}

// Retry discards the current puzzle and deals a new one with the same
// config.
func (c *Controller[C, S]) Retry() {
	if !c.started {
		c.Start()
		return
	}
	c.progress.Attempts++
	c.begin(c.cfg)
}

// Advance moves to the next level after a successful round and deals it.
// Clearing the last level starts over from level 1 with a zero score.
func (c *Controller[C, S]) Advance() bool {
	r, ok := c.state.Result()
	if !c.started || !ok || r.Outcome != OutcomeSuccess {
		return false
	}
	if c.progress.Level < c.game.Info.MaxLevel {
		c.progress.Level++
	} else {
		c.progress.Level = 1
		c.progress.Score = 0
	}
	c.Start()
	return true
}

// Reset returns to level 1 with a zero score and deals a round.
func (c *Controller[C, S]) Reset() {
	c.progress = Progress{Level: 1}
	c.notices = nil
	c.Start()
}

func (c *Controller[C, S]) begin(cfg C) {
	c.timers.CancelAll()
	c.token++
	c.cfg = cfg

	next := c.game.Generate(cfg, c.rng)
	if c.started {
		if carrier, ok := any(next).(Carrier[S]); ok {
			next = carrier.Carry(c.state)
		}
	}
	next, effects := next.Start()
	c.state = next
	c.started = true
	c.reported = false

	c.log.Debug("round started",
		zap.Int("level", c.progress.Level),
		zap.Int("attempt", c.progress.Attempts),
		zap.Uint64("token", c.token),
	)
	c.apply(effects)
	c.report()
}

// Handle feeds one event to the current round.
func (c *Controller[C, S]) Handle(ev Event) {
	if !c.started {
		return
	}
	if ev.Kind == EventTimer && ev.Token != c.token {
		c.log.Debug("stale timer dropped",
			zap.String("timer", string(ev.Timer)),
			zap.Uint64("token", ev.Token),
			zap.Uint64("current", c.token),
		)
		return
	}
	if _, done := c.state.Result(); done && ev.Kind != EventTimer {
		return
	}

	before := c.state.Phase()
	next, effects := c.state.Apply(ev)
	c.state = next
	if next.Phase() != before {
		// Everything scheduled for the old phase is now stale.
		c.timers.CancelAll()
		c.token++
	}
	c.apply(effects)
	c.report()
}

func (c *Controller[C, S]) apply(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectSchedule:
			c.timers.Schedule(e.Timer, c.token, e.After)
		case EffectCancel:
			c.timers.Cancel(e.Timer)
		case EffectScore:
			c.progress.Score += e.Points
			if c.progress.Score < 0 {
				c.progress.Score = 0
			}
		case EffectNotice:
			c.notices = append(c.notices, e.Notice)
			if len(c.notices) > maxNotices {
				c.notices = c.notices[len(c.notices)-maxNotices:]
			}
		}
	}
}

func (c *Controller[C, S]) report() {
	r, ok := c.state.Result()
	if !ok || c.reported {
		return
	}
	c.reported = true
	c.log.Info("round finished",
		zap.Int("level", c.progress.Level),
		zap.String("outcome", r.Outcome.String()),
		zap.Int("delta", r.Delta),
		zap.Int("score", c.progress.Score),
	)
	if c.observer != nil {
		c.observer(c.game.Info, c.progress, r)
	}
}

func (c *Controller[C, S]) View() View             { return c.state.View() }
func (c *Controller[C, S]) Phase() Phase           { return c.state.Phase() }
func (c *Controller[C, S]) Progress() Progress     { return c.progress }
func (c *Controller[C, S]) Result() (Result, bool) { return c.state.Result() }

// Notices returns the most recent notices, oldest first.
func (c *Controller[C, S]) Notices() []Notice {
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Config returns the resolved config of the current round.
func (c *Controller[C, S]) Config() C { return c.cfg }

// State returns the current round state.
func (c *Controller[C, S]) State() S { return c.state }

// Token identifies the current round and phase; timers scheduled under an
// older token are ignored.
func (c *Controller[C, S]) Token() uint64 { return c.token }

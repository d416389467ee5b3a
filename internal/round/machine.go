package round

import "math/rand"

// Machine is a round evaluator written as a pure state machine. S is the
// concrete state type; every method has a value receiver and none of them
// mutate it. Once Result reports true, non-timer events are ignored.
type Machine[S any] interface {
	// Start returns the state at the top of the round and the timers it
	// needs.
	Start() (S, []Effect)
	// Apply is the transition function.
	Apply(ev Event) (S, []Effect)
	Phase() Phase
	Result() (Result, bool)
	View() View
}

// Carrier is implemented by states that keep per-session resources, such
// as coins, from one round to the next.
type Carrier[S any] interface {
	Carry(prev S) S
}

// Leveled binds a game's config resolver, generator and evaluator.
//
// Resolve must be deterministic and non-decreasing in every size field up
// to its cap; callers guarantee level >= 1. Generate takes all of its
// randomness from rng.
type Leveled[C any, S Machine[S]] struct {
	Info     Info
	Resolve  func(level int) C
	Generate func(cfg C, rng *rand.Rand) S
}

// Scorecard tracks what a round has earned and how it ended. States embed
// it to get Result for free.
type Scorecard struct {
	earned int
	result Result
	done   bool
}

// Award records points and returns the matching score effect. Points
// awarded after Finish do not change the result.
func (c Scorecard) Award(points int) (Scorecard, Effect) {
	c.earned += points
	return c, Score(points)
}

// Finish closes the round. Finishing twice keeps the first outcome.
func (c Scorecard) Finish(o Outcome) Scorecard {
	if c.done {
		return c
	}
	c.done = true
	c.result = Result{Outcome: o, Delta: c.earned}
	return c
}

// Result reports the round's result once it has finished.
func (c Scorecard) Result() (Result, bool) {
	if !c.done {
		return Result{}, false
	}
	return c.result, true
}

// Done reports whether the round has finished.
func (c Scorecard) Done() bool { return c.done }

// Earned is the running total for the round.
func (c Scorecard) Earned() int { return c.earned }

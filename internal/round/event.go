package round

import "time"

// EventKind identifies what the player (or a timer) did.
type EventKind uint8

const (
	EventSelect  EventKind = iota + 1 // pick choice Index
	EventLetter                       // type or pick Letter
	EventErase                        // drop the last typed/picked item
	EventSubmit                       // submit the typed word
	EventShuffle                      // reshuffle the offered letters
	EventHint                         // spend a hint
	EventTimer                        // a scheduled timer fired
)

// TimerName identifies a timer within one round. A round has at most one
// pending timer per name.
type TimerName string

const (
	TimerTick    TimerName = "tick"    // one-second countdown
	TimerAdvance TimerName = "advance" // leave the current phase
	TimerStep    TimerName = "step"    // next playback frame
)

// Event is an input to a Machine.
type Event struct {
	Kind   EventKind
	Index  int
	Letter rune
	Timer  TimerName
	Token  uint64 // round token the timer was scheduled under
}

func Select(i int) Event    { return Event{Kind: EventSelect, Index: i} }
func Letter(r rune) Event   { return Event{Kind: EventLetter, Letter: r} }
func Erase() Event          { return Event{Kind: EventErase} }
func Submit() Event         { return Event{Kind: EventSubmit} }
func ShuffleLetters() Event { return Event{Kind: EventShuffle} }
func Hint() Event           { return Event{Kind: EventHint} }

// Fire is the event a timer delivers.
func Fire(name TimerName, token uint64) Event {
	return Event{Kind: EventTimer, Timer: name, Token: token}
}

// EffectKind identifies a side effect requested by a transition.
type EffectKind uint8

const (
	EffectSchedule EffectKind = iota + 1
	EffectCancel
	EffectScore
	EffectNotice
)

// Severity of a notice.
type Severity uint8

const (
	NoticeInfo Severity = iota
	NoticeError
)

// Notice is a short message for the player.
type Notice struct {
	Severity Severity
	Title    string
	Text     string
}

// Effect is a side effect a transition asks the controller to perform.
// Machines never touch timers or the score directly.
type Effect struct {
	Kind   EffectKind
	Timer  TimerName
	After  time.Duration
	Points int
	Notice Notice
}

// Schedule asks for name to fire after d, replacing any pending timer with
// the same name.
func Schedule(name TimerName, d time.Duration) Effect {
	return Effect{Kind: EffectSchedule, Timer: name, After: d}
}

// Cancel drops the pending timer called name.
func Cancel(name TimerName) Effect { return Effect{Kind: EffectCancel, Timer: name} }

// Score adds points to the player's score. Negative points deduct; the
// controller never lets the score drop below zero.
func Score(points int) Effect { return Effect{Kind: EffectScore, Points: points} }

// Inform reports a neutral or positive message.
func Inform(title, text string) Effect {
	return Effect{Kind: EffectNotice, Notice: Notice{Severity: NoticeInfo, Title: title, Text: text}}
}

// Reject reports an error-severity notice: a wrong answer, a lost round or
// input the round cannot take.
func Reject(title, text string) Effect {
	return Effect{Kind: EffectNotice, Notice: Notice{Severity: NoticeError, Title: title, Text: text}}
}

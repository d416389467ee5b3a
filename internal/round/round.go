// Package round holds the leveled-round model every mini-game shares: a
// level config resolver, a puzzle generator and an evaluator written as a
// pure state machine, plus the controller that owns the player's progress
// and the timers a round schedules.
package round

// Outcome classifies how a round ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFail
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Result is the terminal classification of a round. Delta is the sum of
// every score change applied while the round was live.
type Result struct {
	Outcome Outcome
	Delta   int
}

// Progress is the player's state for one mounted session. It is never
// persisted.
type Progress struct {
	Level    int
	Score    int
	Attempts int // rounds played at the current level
}

// Phase is a named sub-state of a round.
type Phase uint8

const (
	PhaseShow   Phase = iota // memorize / pattern playback
	PhaseInput               // recall / selection / typing
	PhaseReveal              // answer shown, waiting on a delay
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseShow:
		return "show"
	case PhaseInput:
		return "input"
	case PhaseReveal:
		return "reveal"
	default:
		return "result"
	}
}

// Category groups games in the picker.
type Category uint8

const (
	CategoryMemory Category = iota
	CategoryFocus
	CategoryLogic
	CategoryLanguage
)

// Categories lists every category in picker order.
var Categories = []Category{CategoryMemory, CategoryFocus, CategoryLogic, CategoryLanguage}

func (c Category) String() string {
	switch c {
	case CategoryMemory:
		return "Memory"
	case CategoryFocus:
		return "Focus"
	case CategoryLogic:
		return "Logic"
	default:
		return "Language"
	}
}

// Difficulty is the catalog badge for a game.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	default:
		return "Hard"
	}
}

// InputMode tells the shell how keys become events.
type InputMode uint8

const (
	InputIndex  InputMode = iota // 1-9, 0, then a-z pick a choice by position
	InputLetter                  // a letter picks the choice showing it
	InputType                    // letters build a word; Enter submits, Backspace erases
)

// Info describes a game for the catalog and the shell header.
type Info struct {
	ID          string
	Title       string
	Emoji       string
	Description string
	Category    Category
	Difficulty  Difficulty
	MaxLevel    int
	Input       InputMode
}

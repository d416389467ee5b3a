package arcade

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"mindful-arcade/internal/render"
	"mindful-arcade/internal/round"
)

// Command is a shell-level request made with a key press.
type Command uint8

const (
	CommandNone     Command = iota
	CommandEvent            // pass Event to the round
	CommandContinue         // next level after a success, retry otherwise
	CommandReset
	CommandBack
	CommandHelp
)

// keyToCommand maps a key press during a round. Which keys feed the round
// depends on the game's input mode.
func keyToCommand(mode round.InputMode, done bool, ev *tcell.EventKey) (Command, round.Event) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return CommandBack, round.Event{}
	case tcell.KeyCtrlR:
		return CommandReset, round.Event{}
	case tcell.KeyF1:
		return CommandHelp, round.Event{}
	case tcell.KeyCtrlS:
		return CommandEvent, round.ShuffleLetters()
	case tcell.KeyCtrlT:
		return CommandEvent, round.Hint()
	case tcell.KeyEnter:
		if done {
			return CommandContinue, round.Event{}
		}
		if mode == round.InputType {
			return CommandEvent, round.Submit()
		}
		return CommandNone, round.Event{}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if mode == round.InputIndex {
			return CommandNone, round.Event{}
		}
		return CommandEvent, round.Erase()
	case tcell.KeyRune:
	default:
		return CommandNone, round.Event{}
	}

	r := ev.Rune()
	if r == '?' {
		return CommandHelp, round.Event{}
	}
	if done {
		return CommandNone, round.Event{}
	}
	switch mode {
	case round.InputIndex:
		if i, ok := render.KeyIndex(r); ok {
			return CommandEvent, round.Select(i)
		}
	default:
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			return CommandEvent, round.Letter(unicode.ToUpper(r))
		}
	}
	return CommandNone, round.Event{}
}

// helpLines is the controls overlay for a game's input mode.
func helpLines(mode round.InputMode) []string {
	lines := []string{"── Round ─────────────────────────────"}
	switch mode {
	case round.InputIndex:
		lines = append(lines,
			"  1-9 0 a-z          Pick by label",
		)
	case round.InputLetter:
		lines = append(lines,
			"  A-Z                Pick a letter",
			"  Backspace          Undo last pick",
		)
	default:
		lines = append(lines,
			"  A-Z                Type a letter",
			"  Backspace          Erase",
			"  Enter              Submit word",
			"  Ctrl-S             Shuffle letters",
			"  Ctrl-T             Hint",
		)
	}
	lines = append(lines,
		"",
		"── Game ──────────────────────────────",
		"  Enter (after)      Next level / retry",
		"  Ctrl-R             Reset to level 1",
		"  Esc                Back to games",
		"  ? / F1             This help",
		"",
		"  [any key to close]",
	)
	return lines
}

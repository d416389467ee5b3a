package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mindful-arcade/internal/round"
)

// drawHeader renders the title on the left and the level, score, timer and
// counters on the right of row 0.
func (r *Renderer) drawHeader(f Frame) {
	w, _ := r.screen.Size()
	title := strings.TrimSpace(f.Info.Emoji + " " + f.Info.Title)
	r.drawText(1, 0, title, tcell.StyleDefault.Foreground(accentColor(f.Info.Category)).Bold(true))

	status := headerStatus(f)
	x := w - runewidth.StringWidth(status) - 1
	if x < 0 {
		x = 0
	}
	r.drawText(x, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func headerStatus(f Frame) string {
	parts := []string{
		fmt.Sprintf("Level %d/%d", f.Progress.Level, f.Info.MaxLevel),
		fmt.Sprintf("Score %d", f.Progress.Score),
	}
	if f.Progress.Attempts > 1 {
		parts = append(parts, fmt.Sprintf("Try %d", f.Progress.Attempts))
	}
	for _, c := range f.View.Counters {
		parts = append(parts, fmt.Sprintf("%s %d", c.Label, c.Value))
	}
	if f.View.Seconds >= 0 {
		parts = append(parts, fmt.Sprintf("⏱ %ds", f.View.Seconds))
	}
	return strings.Join(parts, "  ")
}

// drawNotices renders the recent notices just above the help line, newest
// last.
func (r *Renderer) drawNotices(screenH int, notices []round.Notice) {
	y := screenH - 1 - len(notices)
	for _, n := range notices {
		text := n.Title
		if n.Text != "" {
			text += ": " + n.Text
		}
		r.drawText(1, y, text, noticeStyle(n))
		y++
	}
}

func (r *Renderer) drawHelpLine(y int, f Frame) {
	r.drawText(1, y, HelpLine(f.Info.Input, f.Done, f.Result.Outcome), helpStyle)
}

// HelpLine is the one-line key reminder for a round.
func HelpLine(mode round.InputMode, done bool, o round.Outcome) string {
	var keys []string
	switch {
	case done && o == round.OutcomeSuccess:
		keys = append(keys, "Enter next level")
	case done:
		keys = append(keys, "Enter try again")
	case mode == round.InputIndex:
		keys = append(keys, "1-9 0 a-z pick")
	case mode == round.InputLetter:
		keys = append(keys, "A-Z pick")
	default:
		keys = append(keys, "A-Z type", "Enter submit", "⌫ erase")
	}
	keys = append(keys, "^R reset", "? help", "Esc back")
	return strings.Join(keys, "  ")
}

// DrawOverlay draws a titled box with the given lines over whatever is on
// screen.
func (r *Renderer) DrawOverlay(title string, lines []string) {
	width := runewidth.StringWidth(title) + 8
	for _, l := range lines {
		if lw := runewidth.StringWidth(l) + 4; lw > width {
			width = lw
		}
	}
	x0, y0 := r.drawBox(width, len(lines)+2, title)
	for i, line := range lines {
		r.drawText(x0+2, y0+1+i, line, bodyStyle)
	}
}

// DrawConfirm draws a yes/no prompt box.
func (r *Renderer) DrawConfirm(prompt string) {
	text := " " + prompt + " (y/n) "
	x0, y0 := r.drawBox(runewidth.StringWidth(text)+4, 3, "")
	r.drawText(x0+2, y0+1, text, titleStyle)
}

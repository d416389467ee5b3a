package arcade

import (
	"github.com/gdamore/tcell/v2"

	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/render"
	"mindful-arcade/internal/round"
)

type pickAction uint8

const (
	pickNone pickAction = iota
	pickPlay
	pickQuit
	pickHelp
)

// picker is the game list with a category filter. Tab 0 is every game.
type picker struct {
	cat   *catalog.Catalog
	tab   int
	games []round.Info
	sel   int
}

func newPicker(cat *catalog.Catalog) *picker {
	p := &picker{cat: cat}
	p.refresh()
	return p
}

func (p *picker) tabs() []string {
	tabs := []string{"All"}
	for _, c := range round.Categories {
		tabs = append(tabs, c.String())
	}
	return tabs
}

func (p *picker) refresh() {
	if p.tab == 0 {
		p.games = p.cat.List()
	} else {
		p.games = p.cat.Filter(round.Categories[p.tab-1])
	}
	if p.sel >= len(p.games) {
		p.sel = max(len(p.games)-1, 0)
	}
}

func (p *picker) view(best map[string]int) render.Picker {
	return render.Picker{
		Tabs:     p.tabs(),
		Tab:      p.tab,
		Games:    p.games,
		Selected: p.sel,
		Best:     best,
	}
}

func (p *picker) move(delta int) {
	if len(p.games) == 0 {
		return
	}
	p.sel = (p.sel + delta + len(p.games)) % len(p.games)
}

func (p *picker) cycleTab(delta int) {
	n := len(round.Categories) + 1
	p.tab = (p.tab + delta + n) % n
	p.sel = 0
	p.refresh()
}

// handle applies a key press and reports what the shell should do. For
// pickPlay the chosen game ID is returned too.
func (p *picker) handle(ev *tcell.EventKey) (pickAction, string) {
	switch ev.Key() {
	case tcell.KeyUp:
		p.move(-1)
	case tcell.KeyDown:
		p.move(1)
	case tcell.KeyTab, tcell.KeyRight:
		p.cycleTab(1)
	case tcell.KeyBacktab, tcell.KeyLeft:
		p.cycleTab(-1)
	case tcell.KeyEnter:
		return p.play(p.sel)
	case tcell.KeyEscape:
		return pickQuit, ""
	case tcell.KeyF1:
		return pickHelp, ""
	}
	switch r := ev.Rune(); {
	case r == 'k' || r == 'K':
		p.move(-1)
	case r == 'j' || r == 'J':
		p.move(1)
	case r == 'q' || r == 'Q':
		return pickQuit, ""
	case r == '?':
		return pickHelp, ""
	case r >= '1' && r <= '9':
		return p.play(int(r - '1'))
	}
	return pickNone, ""
}

func (p *picker) play(i int) (pickAction, string) {
	if i < 0 || i >= len(p.games) {
		return pickNone, ""
	}
	p.sel = i
	return pickPlay, p.games[i].ID
}

var pickerHelp = []string{
	"── Games ─────────────────────────────",
	"  ↑/↓ or j/k         Move",
	"  Tab / ←→           Change category",
	"  Enter              Play selected",
	"  1-9                Play by number",
	"",
	"── Arcade ────────────────────────────",
	"  q / Esc            Quit",
	"  ?                  This help",
	"",
	"  [any key to close]",
}

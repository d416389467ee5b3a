package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mindful-arcade/assets"
	"mindful-arcade/internal/round"
)

// Picker is the state of the game picker screen.
type Picker struct {
	Tabs     []string
	Tab      int
	Games    []round.Info
	Selected int
	Best     map[string]int // best level reached this session, by game ID
}

// DrawPicker renders the banner, category tabs and the game list.
func (r *Renderer) DrawPicker(p Picker) {
	r.screen.Clear()
	_, h := r.screen.Size()

	r.drawCentered(1, assets.Banner, titleStyle)
	r.drawCentered(2, assets.SubBanner, bodyStyle)
	r.drawHLine(3, tcell.ColorGray)

	x := 2
	for i, tab := range p.Tabs {
		style := helpStyle
		if i == p.Tab {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
		}
		x = r.drawText(x, 4, " "+tab+" ", style) + 1
	}

	y := 6
	for i, g := range p.Games {
		marker := "  "
		nameStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == p.Selected {
			marker = "▶ "
			nameStyle = tcell.StyleDefault.Foreground(accentColor(g.Category)).Bold(true)
		}
		key := ' '
		if i < 9 {
			key = rune('1' + i)
		}
		line := fmt.Sprintf("%s%c %s %s", marker, key, g.Emoji, g.Title)
		end := r.drawText(2, y, line, nameStyle)

		meta := fmt.Sprintf("  %s · %s · %d levels", g.Category, g.Difficulty, g.MaxLevel)
		if best := p.Best[g.ID]; best > 0 {
			meta += fmt.Sprintf(" · best %d", best)
		}
		r.drawText(end, y, meta, labelStyle)
		if i == p.Selected && g.Description != "" {
			y++
			r.drawText(7, y, g.Description, bodyStyle)
		}
		y++
	}
	if len(p.Games) == 0 {
		r.drawText(4, y, "No games in this category.", labelStyle)
	}

	r.drawText(1, h-1, "↑/↓ move  Tab category  Enter play  1-9 quick pick  ? help  q quit", helpStyle)
}

// Package render draws arcade screens onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mindful-arcade/internal/round"
)

// Renderer draws rounds, the game picker and overlays onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the screen the renderer draws on.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Frame is everything needed to draw one round.
type Frame struct {
	Info     round.Info
	Progress round.Progress
	View     round.View
	Result   round.Result
	Done     bool
	Notices  []round.Notice
}

// FrameOf snapshots a session for drawing.
func FrameOf(s round.Session) Frame {
	res, done := s.Result()
	return Frame{
		Info:     s.Info(),
		Progress: s.Progress(),
		View:     s.View(),
		Result:   res,
		Done:     done,
		Notices:  s.Notices(),
	}
}

// DrawRound renders a full round screen: header, prompt, board, entry,
// choices, keyboard, status, notices and the key help line.
func (r *Renderer) DrawRound(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	v := f.View

	r.drawHeader(f)
	r.drawHLine(1, accentColor(f.Info.Category))

	y := 2
	if v.Prompt != "" {
		r.drawCentered(y, v.Prompt, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}
	y += 2

	labelBoard := f.Info.Input == round.InputIndex && len(v.Choices) == 0
	next := 0
	for i, row := range v.Board {
		if i < len(v.RowNotes) && v.RowNotes[i] != "" {
			r.drawText(rowEnd(w, row)+1, y, v.RowNotes[i], bodyStyle)
		}
		y = r.drawTileRow(y, w, row, labelBoard, &next)
	}
	if len(v.Board) > 0 {
		y++
	}

	if v.Slots > 0 {
		r.drawEntry(y, w, v.Entry, v.Slots)
		y += 2
	}

	if len(v.Choices) > 0 {
		next = 0
		for _, row := range wrapTiles(v.Choices, w) {
			y = r.drawTileRow(y, w, row, f.Info.Input == round.InputIndex, &next)
		}
		y++
	}

	for _, row := range v.Keyboard {
		r.drawKeyRow(y, w, row)
		y++
	}
	if len(v.Keyboard) > 0 {
		y++
	}

	if v.Status != "" {
		r.drawCentered(y, v.Status, statusStyle(f))
	}

	r.drawNotices(h, f.Notices)
	r.drawHelpLine(h-1, f)
}

// drawTileRow draws one row of tiles centered on screen and returns the
// next free row. With labels, each tile gets its index key underneath;
// next is the running index.
func (r *Renderer) drawTileRow(y, screenW int, row []round.Tile, labels bool, next *int) int {
	cw := cellWidth(row)
	x := (screenW - len(row)*cw) / 2
	if x < 0 {
		x = 0
	}
	for i, t := range row {
		r.drawTile(x+i*cw, y, cw-1, t)
		if labels {
			if k, ok := IndexKey(*next); ok {
				r.screen.SetContent(x+i*cw+(cw-1)/2, y+1, k, nil, labelStyle)
			}
		}
		*next++
	}
	if labels {
		return y + 2
	}
	return y + 1
}

// rowEnd is the first column after a row drawn by drawTileRow.
func rowEnd(screenW int, row []round.Tile) int {
	cw := cellWidth(row)
	return max((screenW-len(row)*cw)/2, 0) + len(row)*cw
}

// drawTile paints a tile of the given width with its glyph centered.
func (r *Renderer) drawTile(x, y, width int, t round.Tile) {
	style := tileStyle(t)
	for col := x; col < x+width; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
	glyph := t.Glyph
	if t.Mark == round.MarkHidden && glyph == "" {
		glyph = "·"
	}
	gw := runewidth.StringWidth(glyph)
	if gw == 0 {
		return
	}
	if gw > width {
		glyph = runewidth.Truncate(glyph, width, "")
		gw = runewidth.StringWidth(glyph)
	}
	r.drawText(x+(width-gw)/2, y, glyph, style)
}

func (r *Renderer) drawEntry(y, screenW int, entry string, slots int) {
	letters := []rune(entry)
	width := slots*2 + 1
	x := (screenW - width) / 2
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.SetContent(x, y, '[', nil, frame)
	for i := 0; i < slots; i++ {
		ch, style := '_', frame
		if i < len(letters) {
			ch, style = letters[i], tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		r.screen.SetContent(x+1+i*2, y, ch, nil, style)
	}
	r.screen.SetContent(x+width-1, y, ']', nil, frame)
}

func (r *Renderer) drawKeyRow(y, screenW int, row []round.Tile) {
	const cw = 3
	x := (screenW - len(row)*cw) / 2
	for i, t := range row {
		r.drawTile(x+i*cw, y, cw-1, t)
	}
}

// wrapTiles splits tiles into rows that fit the screen width.
func wrapTiles(tiles []round.Tile, screenW int) [][]round.Tile {
	cw := cellWidth(tiles)
	perRow := screenW / cw
	if perRow < 1 {
		perRow = 1
	}
	var rows [][]round.Tile
	for len(tiles) > perRow {
		rows = append(rows, tiles[:perRow])
		tiles = tiles[perRow:]
	}
	return append(rows, tiles)
}

// cellWidth is the column pitch for a row of tiles, including one gap.
func cellWidth(tiles []round.Tile) int {
	w := 3
	for _, t := range tiles {
		if gw := runewidth.StringWidth(t.Glyph) + 2; gw > w {
			w = gw
		}
	}
	return w + 1
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after
// it. Zero-width runes ride along with the previous glyph.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	var cluster []rune
	flush := func() {
		if len(cluster) == 0 {
			return
		}
		g := string(cluster)
		r.putGlyph(col, y, g, style)
		col += max(runewidth.StringWidth(g), 1)
		cluster = cluster[:0]
	}
	for _, ch := range text {
		if runewidth.RuneWidth(ch) == 0 && len(cluster) > 0 {
			cluster = append(cluster, ch)
			continue
		}
		flush()
		cluster = append(cluster, ch)
	}
	flush()
	return col
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawBox draws a bordered box of the given size centered on screen and
// returns its top-left corner.
func (r *Renderer) drawBox(width, height int, title string) (int, int) {
	sw, sh := r.screen.Size()
	x0 := (sw - width) / 2
	y0 := (sh - height) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	for row := y0; row < y0+height; row++ {
		for col := x0; col < x0+width; col++ {
			r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
	for col := x0; col < x0+width; col++ {
		r.screen.SetContent(col, y0, '─', nil, borderStyle)
		r.screen.SetContent(col, y0+height-1, '─', nil, borderStyle)
	}
	for row := y0; row < y0+height; row++ {
		r.screen.SetContent(x0, row, '│', nil, borderStyle)
		r.screen.SetContent(x0+width-1, row, '│', nil, borderStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, borderStyle)
	r.screen.SetContent(x0+width-1, y0, '┐', nil, borderStyle)
	r.screen.SetContent(x0, y0+height-1, '└', nil, borderStyle)
	r.screen.SetContent(x0+width-1, y0+height-1, '┘', nil, borderStyle)

	if title != "" {
		header := " " + title + " "
		r.drawText(x0+(width-runewidth.StringWidth(header))/2, y0, header, titleStyle)
	}
	return x0, y0
}

package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindful-arcade/internal/round"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init() // Init resets the size to 80x25
	ss.SetSize(80, 24)
	return ss
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

var simonInfo = round.Info{
	ID:       "simon",
	Title:    "Simon Pattern",
	Category: round.CategoryMemory,
	MaxLevel: 20,
	Input:    round.InputIndex,
}

// ─── keys ─────────────────────────────────────────────────────────────────────

func TestIndexKeyRoundTrip(t *testing.T) {
	for i := 0; i < 36; i++ {
		k, ok := IndexKey(i)
		require.True(t, ok, "index %d", i)
		got, ok := KeyIndex(k)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := IndexKey(36)
	assert.False(t, ok)
	_, ok = KeyIndex('!')
	assert.False(t, ok)
}

func TestKeyIndexOrder(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'1', 0}, {'9', 8}, {'0', 9}, {'a', 10}, {'A', 10}, {'z', 35},
	}
	for _, tc := range cases {
		got, ok := KeyIndex(tc.r)
		if !ok || got != tc.want {
			t.Errorf("KeyIndex(%q) = %d, %v; want %d", tc.r, got, ok, tc.want)
		}
	}
}

// ─── round screen ─────────────────────────────────────────────────────────────

func TestDrawRoundHeader(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawRound(Frame{
		Info:     simonInfo,
		Progress: round.Progress{Level: 3, Score: 120, Attempts: 1},
		View: round.View{
			Seconds:  7,
			Counters: []round.Counter{{Label: "Replays", Value: 2}},
		},
	})

	header := rowText(screen, 0)
	assert.Contains(t, header, "Simon Pattern")
	assert.Contains(t, header, "Level 3/20")
	assert.Contains(t, header, "Score 120")
	assert.Contains(t, header, "Replays 2")
	assert.Contains(t, header, "7s")
	assert.NotContains(t, header, "Try")
}

func TestDrawRoundLabelsBoardForIndexGames(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawRound(Frame{
		Info: simonInfo,
		View: round.View{
			Board:   [][]round.Tile{{{Glyph: "A"}, {Glyph: "B"}, {Glyph: "C"}}},
			Seconds: -1,
		},
	})

	assert.Equal(t, []string{"A", "B", "C"}, strings.Fields(rowText(screen, 4)))
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(rowText(screen, 5)))
}

func TestDrawRoundNoLabelsForLetterGames(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	info := simonInfo
	info.Input = round.InputLetter
	r.DrawRound(Frame{
		Info: info,
		View: round.View{
			Board:   [][]round.Tile{{{Glyph: "A"}, {Glyph: "B"}}},
			Seconds: -1,
		},
	})
	assert.Empty(t, strings.TrimSpace(rowText(screen, 5)))
}

func TestDrawRoundRowNotes(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	info := simonInfo
	info.Input = round.InputType
	hidden := round.Tile{Glyph: "_", Mark: round.MarkHidden}
	r.DrawRound(Frame{
		Info: info,
		View: round.View{
			Board:    [][]round.Tile{{hidden, hidden, hidden}, {hidden, hidden}},
			RowNotes: []string{"- Feline pet", ""},
			Seconds:  -1,
		},
	})

	assert.Equal(t, []string{"_", "_", "_", "-", "Feline", "pet"}, strings.Fields(rowText(screen, 4)))
	assert.Equal(t, []string{"_", "_"}, strings.Fields(rowText(screen, 5)))
}

func TestDrawRoundEntry(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawRound(Frame{
		Info: simonInfo,
		View: round.View{Entry: "AB", Slots: 5, Seconds: -1},
	})
	assert.Equal(t, "[A B _ _ _]", strings.TrimSpace(rowText(screen, 4)))
}

func TestDrawRoundStatusAndNotices(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawRound(Frame{
		Info:   simonInfo,
		View:   round.View{Status: "Success!", Seconds: -1},
		Done:   true,
		Result: round.Result{Outcome: round.OutcomeSuccess, Delta: 30},
		Notices: []round.Notice{
			{Severity: round.NoticeError, Title: "Oops!", Text: "Wrong pad"},
			{Title: "Nice", Text: "Pattern complete"},
		},
	})

	_, h := screen.Size()
	require.Equal(t, 24, h)
	text := screenText(screen)
	assert.Contains(t, text, "Success!")
	assert.Contains(t, rowText(screen, h-3), "Oops!: Wrong pad")
	assert.Contains(t, rowText(screen, h-2), "Nice: Pattern complete")
	assert.Contains(t, rowText(screen, h-1), "Enter next level")
}

func TestHelpLine(t *testing.T) {
	assert.Contains(t, HelpLine(round.InputIndex, false, round.OutcomeNone), "pick")
	assert.Contains(t, HelpLine(round.InputType, false, round.OutcomeNone), "Enter submit")
	assert.Contains(t, HelpLine(round.InputType, true, round.OutcomeFail), "Enter try again")
	assert.Contains(t, HelpLine(round.InputLetter, true, round.OutcomeSuccess), "Enter next level")
}

// ─── glyphs and styles ────────────────────────────────────────────────────────

func TestPutGlyphWideFillsSecondColumn(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	screen.SetContent(1, 0, 'x', nil, tcell.StyleDefault)
	r.putGlyph(0, 0, "🧠", tcell.StyleDefault)

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '🧠', mainc)
	next, _, _, _ := screen.GetContent(1, 0)
	assert.NotEqual(t, 'x', next)
}

func TestDrawTextAdvancesByWidth(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	assert.Equal(t, 3, r.drawText(0, 0, "abc", tcell.StyleDefault))
	assert.Equal(t, 4, r.drawText(0, 1, "🧠ab", tcell.StyleDefault))
}

func TestTileStyleSwatchUsesItsColor(t *testing.T) {
	_, bg, _ := tileStyle(round.Tile{Color: "#ff0000"}).Decompose()
	assert.Equal(t, tcell.GetColor("#ff0000"), bg)

	_, bg, _ = tileStyle(round.Tile{Glyph: "A", Mark: round.MarkCorrect}).Decompose()
	assert.Equal(t, tcell.ColorGreen, bg)
}

func TestWrapTiles(t *testing.T) {
	tiles := make([]round.Tile, 30)
	for i := range tiles {
		tiles[i] = round.Tile{Glyph: "X"}
	}
	rows := wrapTiles(tiles, 40) // pitch 4, ten per row
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 10)
	}
}

// ─── picker and overlays ──────────────────────────────────────────────────────

func TestDrawPickerMarksSelection(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawPicker(Picker{
		Tabs: []string{"All", "Memory"},
		Games: []round.Info{
			simonInfo,
			{ID: "focus", Title: "Focus Challenge", Category: round.CategoryFocus, MaxLevel: 20},
		},
		Selected: 1,
		Best:     map[string]int{"simon": 4},
	})

	text := screenText(screen)
	assert.Contains(t, text, "All")
	assert.Contains(t, rowText(screen, 6), "1")
	assert.Contains(t, rowText(screen, 6), "best 4")
	assert.Contains(t, rowText(screen, 7), "▶")
	assert.Contains(t, rowText(screen, 7), "Focus Challenge")
}

func TestDrawConfirm(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawConfirm("Leave this game?")
	assert.Contains(t, screenText(screen), "Leave this game? (y/n)")
}

func TestDrawOverlay(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen)
	r.DrawOverlay("Controls", []string{"Esc  back", "?    help"})
	text := screenText(screen)
	assert.Contains(t, text, "Controls")
	assert.Contains(t, text, "Esc  back")
	assert.Contains(t, text, "┌")
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"mindful-arcade/assets"
	"mindful-arcade/internal/round"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// markStyles is how text tiles look in each mark. Color swatches keep their
// own background and use tileStyle's overrides instead.
var markStyles = map[round.Mark]tcell.Style{
	round.MarkPlain:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
	round.MarkHidden:   tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	round.MarkLit:      tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true),
	round.MarkSelected: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua).Bold(true),
	round.MarkCorrect:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
	round.MarkPresent:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold).Bold(true),
	round.MarkAbsent:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDimGray),
	round.MarkWrong:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
	round.MarkMatched:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack).Dim(true),
	round.MarkDisabled: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack).Dim(true),
}

// tileStyle picks the style for a tile. Swatches are painted in their own
// color and marked with text attributes.
func tileStyle(t round.Tile) tcell.Style {
	if t.Color == "" {
		return markStyles[t.Mark]
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.GetColor(t.Color))
	switch t.Mark {
	case round.MarkLit, round.MarkSelected, round.MarkCorrect:
		style = style.Bold(true).Underline(true)
	case round.MarkWrong:
		style = style.Bold(true).Reverse(true)
	case round.MarkDisabled, round.MarkMatched, round.MarkHidden:
		style = style.Dim(true)
	}
	return style
}

// accentColor is the category's accent from the theme table.
func accentColor(c round.Category) tcell.Color {
	if th, ok := assets.CategoryThemes[c.String()]; ok {
		return tcell.GetColor(th.Accent)
	}
	return tcell.ColorGray
}

func statusStyle(f Frame) tcell.Style {
	style := tcell.StyleDefault.Bold(true)
	if !f.Done {
		return style.Foreground(tcell.ColorWhite)
	}
	if f.Result.Outcome == round.OutcomeSuccess {
		return style.Foreground(tcell.ColorGreen)
	}
	return style.Foreground(tcell.ColorRed)
}

func noticeStyle(n round.Notice) tcell.Style {
	if n.Severity == round.NoticeError {
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
}

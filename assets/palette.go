package assets

import "strings"

// Color is a named swatch. Hex is a "#rrggbb" string understood by
// tcell.GetColor.
type Color struct {
	Name string
	Hex  string
}

// MemoryColors is the source palette for Advanced Color Memory.
var MemoryColors = []Color{
	{"Red", "#ef4444"},
	{"Blue", "#3b82f6"},
	{"Green", "#22c55e"},
	{"Yellow", "#eab308"},
	{"Purple", "#a855f7"},
	{"Pink", "#ec4899"},
	{"Orange", "#f97316"},
	{"Teal", "#14b8a6"},
	{"Indigo", "#6366f1"},
	{"Cyan", "#06b6d4"},
	{"Lime", "#84cc16"},
	{"Violet", "#8b5cf6"},
	{"Amber", "#f59e0b"},
	{"Emerald", "#10b981"},
	{"Sky", "#0ea5e9"},
}

// FocusColors is the source palette for Focus Challenge. It is the memory
// palette plus Rose.
var FocusColors = []Color{
	{"Red", "#ef4444"},
	{"Blue", "#3b82f6"},
	{"Green", "#22c55e"},
	{"Yellow", "#eab308"},
	{"Purple", "#a855f7"},
	{"Pink", "#ec4899"},
	{"Orange", "#f97316"},
	{"Teal", "#14b8a6"},
	{"Indigo", "#6366f1"},
	{"Cyan", "#06b6d4"},
	{"Lime", "#84cc16"},
	{"Rose", "#f43f5e"},
	{"Violet", "#8b5cf6"},
	{"Amber", "#f59e0b"},
	{"Emerald", "#10b981"},
	{"Sky", "#0ea5e9"},
}

// Alphabet is A through Z.
var Alphabet = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// Shapes used by the shape-pattern puzzles, in pattern order.
var Shapes = []string{"▲", "■", "●", "◆", "★"}

// CardSymbols is the face pool for Memory Cards.
var CardSymbols = []string{
	"🌟", "🎯", "🔥", "💎", "🌈", "⚡", "🎪", "🚀", "🎨", "🎭",
	"🎵", "🎲", "🎊", "🎈", "🎁", "🏆", "🌺", "🦋", "🌸", "🍀",
}

// SimonPadSize is the number of cells on the Simon pad (a 3x3 grid).
const SimonPadSize = 9

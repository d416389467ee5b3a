package assets

// CategoryTheme is the accent used for a game category in the picker and
// the in-game header.
type CategoryTheme struct {
	Emoji  string
	Accent string // "#rrggbb"
}

// CategoryThemes maps a category name to its theme.
var CategoryThemes = map[string]CategoryTheme{
	"Memory":   {Emoji: "🧠", Accent: "#a855f7"},
	"Focus":    {Emoji: "🎯", Accent: "#f97316"},
	"Logic":    {Emoji: "🧩", Accent: "#3b82f6"},
	"Language": {Emoji: "📚", Accent: "#22c55e"},
}

// Banner lines shown above the game picker.
const (
	Banner    = "🌿 MINDFUL ARCADE 🌿"
	SubBanner = "Short brain-training games. Pick one and breathe."
)

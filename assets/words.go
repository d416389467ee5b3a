package assets

// WordleWords holds one target per Wordle level, easiest first.
var WordleWords = []string{
	// 1-10
	"ABOUT", "ABOVE", "AFTER", "AGAIN", "AMONG", "APPLE", "BEACH", "BREAD", "CHAIR", "CLEAN",
	// 11-20
	"DANCE", "DREAM", "EARLY", "EARTH", "FIELD", "FIRST", "GLASS", "GREAT", "GREEN", "HAPPY",
	// 21-30
	"HEART", "HOUSE", "LIGHT", "MONEY", "MUSIC", "NIGHT", "OCEAN", "PAPER", "PEACE", "PLANT",
	// 31-40
	"QUICK", "QUIET", "RIGHT", "ROUND", "SMALL", "SMILE", "SOUND", "SPACE", "START", "STORY",
	// 41-50
	"STUDY", "SWEET", "TABLE", "THANK", "THINK", "THREE", "TODAY", "TRAIN", "WATER", "WORLD",
}

// ScrambleWords is the Word Scramble vocabulary: words about wellness and
// mindfulness, 4 to 10 letters long.
var ScrambleWords = []string{
	"CALM", "REST", "HOPE", "KIND", "HEAL", "SOUL", "EASE",
	"PEACE", "RELAX", "FOCUS", "SMILE", "TRUST", "SLEEP", "QUIET", "BLOOM",
	"BREATH", "GROWTH", "BRAVE", "MINDFUL", "BALANCE", "HEALING",
	"PATIENCE", "SERENITY", "GRATEFUL", "KINDNESS", "HARMONY",
	"GRATITUDE", "AWARENESS", "MEDITATE", "STILLNESS",
	"COMPASSION", "RESILIENCE", "TRANQUIL",
}

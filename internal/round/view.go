package round

// Mark is how a tile should be drawn.
type Mark uint8

const (
	MarkPlain    Mark = iota
	MarkHidden        // face down or empty slot
	MarkLit           // highlighted during playback
	MarkSelected      // picked by the player
	MarkCorrect       // right letter, right place / right answer
	MarkPresent       // right letter, wrong place
	MarkAbsent        // not in the answer
	MarkWrong         // the player's wrong pick
	MarkMatched       // solved and out of play
	MarkDisabled
)

// Tile is one cell of a board or one choice.
type Tile struct {
	Glyph string
	Color string // "#rrggbb" swatch, empty for text tiles
	Mark  Mark
}

// Counter is an extra number shown in the header, such as coins.
type Counter struct {
	Label string
	Value int
}

// View is the renderer-neutral picture of a round.
type View struct {
	Prompt   string
	Board    [][]Tile
	RowNotes []string // text after the matching board row, such as a clue
	Choices  []Tile
	Entry    string
	Slots    int // width of the entry box, 0 for none
	Status   string
	Seconds  int // countdown, -1 when no timer runs
	Counters []Counter
	Keyboard [][]Tile // letter states, for word games
}

package assets

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/wordmaker.yaml
var wordMakerYAML []byte

// PlacedWord is a required Word Maker word with its crossword placement.
type PlacedWord struct {
	Word string `yaml:"word"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Dir  string `yaml:"dir"` // "across" or "down"
	Clue string `yaml:"clue"`
}

// GridSize is the crossword area for one level.
type GridSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WordMakerLevel is one row of the embedded level table.
type WordMakerLevel struct {
	Level    int          `yaml:"level"`
	Letters  string       `yaml:"letters"`
	Grid     GridSize     `yaml:"grid"`
	Required []PlacedWord `yaml:"required"`
	Bonus    []string     `yaml:"bonus"`
}

type wordMakerFile struct {
	Levels []WordMakerLevel `yaml:"levels"`
}

// WordMakerLevels returns the embedded level table, ordered by level.
// The table is parsed once; a malformed table panics since it is compiled
// into the binary.
var WordMakerLevels = sync.OnceValue(func() []WordMakerLevel {
	levels, err := parseWordMaker(wordMakerYAML)
	if err != nil {
		panic(err)
	}
	return levels
})

func parseWordMaker(data []byte) ([]WordMakerLevel, error) {
	var f wordMakerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse word maker table: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("parse word maker table: no levels")
	}
	for i, lv := range f.Levels {
		if lv.Level != i+1 {
			return nil, fmt.Errorf("word maker level %d out of order (found %d)", i+1, lv.Level)
		}
		if lv.Letters == "" || len(lv.Required) == 0 {
			return nil, fmt.Errorf("word maker level %d: letters and required words must be set", lv.Level)
		}
		for _, w := range lv.Required {
			if w.Dir != "across" && w.Dir != "down" {
				return nil, fmt.Errorf("word maker level %d: %s has direction %q", lv.Level, w.Word, w.Dir)
			}
		}
	}
	return f.Levels, nil
}

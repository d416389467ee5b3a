// Package catalog is the registry of mini-games the shell can mount.
package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"mindful-arcade/internal/games/alphabet"
	"mindful-arcade/internal/games/colormemory"
	"mindful-arcade/internal/games/focus"
	"mindful-arcade/internal/games/memorycards"
	"mindful-arcade/internal/games/pattern"
	"mindful-arcade/internal/games/scramble"
	"mindful-arcade/internal/games/simon"
	"mindful-arcade/internal/games/wordle"
	"mindful-arcade/internal/games/wordmaker"
	"mindful-arcade/internal/round"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Settings are per-game switches taken from the arcade config.
type Settings struct {
	ReconcileWordle bool
}

// Deps is everything a factory needs to build a session.
type Deps struct {
	Rand     *rand.Rand
	Timers   round.Timers
	Settings Settings
	Options  []round.Option
}

// Factory builds a fresh session at level 1.
type Factory func(Deps) round.Session

type entry struct {
	info round.Info
	new  Factory
}

// Catalog holds games in registration order.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string
}

func New() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

// Register adds a game. Registering an ID twice panics.
func (c *Catalog) Register(info round.Info, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[info.ID]; exists {
		panic(fmt.Sprintf("catalog: game %q already registered", info.ID))
	}
	c.entries[info.ID] = entry{info: info, new: f}
	c.order = append(c.order, info.ID)
}

// Add registers a leveled game with the default controller.
func Add[C any, S round.Machine[S]](c *Catalog, g round.Leveled[C, S]) {
	c.Register(g.Info, func(d Deps) round.Session {
		return round.NewController(g, d.Rand, d.Timers, d.Options...)
	})
}

// List returns every game in registration order.
func (c *Catalog) List() []round.Info {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]round.Info, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].info)
	}
	return out
}

// Filter returns the games in one category.
func (c *Catalog) Filter(cat round.Category) []round.Info {
	var out []round.Info
	for _, info := range c.List() {
		if info.Category == cat {
			out = append(out, info)
		}
	}
	return out
}

// Lookup returns the metadata of a registered game.
func (c *Catalog) Lookup(id string) (round.Info, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e.info, ok
}

// Create builds a session for id.
func (c *Catalog) Create(id string, d Deps) (round.Session, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return e.new(d), nil
}

// Default returns a catalog with every game, in picker order.
func Default() *Catalog {
	c := New()
	Add(c, scramble.Game)
	Add(c, memorycards.Game)
	Add(c, pattern.Game)
	Add(c, focus.Game)
	Add(c, simon.Game)
	Add(c, colormemory.Game)
	Add(c, alphabet.Game)
	c.Register(wordle.Game.Info, func(d Deps) round.Session {
		if d.Settings.ReconcileWordle {
			return round.NewController(wordle.Reconciled, d.Rand, d.Timers, d.Options...)
		}
		return round.NewController(wordle.Game, d.Rand, d.Timers, d.Options...)
	})
	Add(c, wordmaker.Game)
	return c
}

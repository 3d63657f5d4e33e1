package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

// Catalog is an ordered, read-only set of levels.
type Catalog struct {
	levels []Level
	byID   map[string]int
}

// NewCatalog wraps levels in their given order.
func NewCatalog(levels []Level) *Catalog {
	c := &Catalog{
		levels: levels,
		byID:   make(map[string]int, len(levels)),
	}
	for i, l := range levels {
		c.byID[l.ID] = i
	}
	return c
}

// LoadCatalog loads every level from the loader.
func LoadCatalog(l *Loader) (*Catalog, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return NewCatalog(levels), nil
}

// Open loads the catalogue from dir, or the embedded levels when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return LoadCatalog(NewLoader(Embedded()))
	}
	c, err := LoadCatalog(NewDirLoader(dir))
	if err != nil {
		return nil, fmt.Errorf("levels dir %s: %w", dir, err)
	}
	return c, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// All returns every level in order.
func (c *Catalog) All() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// ByID returns the level with the given ID.
func (c *Catalog) ByID(id string) (Level, error) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
	}
	return c.levels[i], nil
}

// Next returns the level after id that has a setup for pack.
func (c *Catalog) Next(id string, pack puzzle.Pack) (Level, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, false
	}
	for _, l := range c.levels[i+1:] {
		if l.Has(pack) {
			return l, true
		}
	}
	return Level{}, false
}

// ForPack returns the levels playable in pack, in order.
func (c *Catalog) ForPack(pack puzzle.Pack) []Level {
	var out []Level
	for _, l := range c.levels {
		if l.Has(pack) {
			out = append(out, l)
		}
	}
	return out
}

// First returns the first level playable in pack.
func (c *Catalog) First(pack puzzle.Pack) (Level, bool) {
	for _, l := range c.levels {
		if l.Has(pack) {
			return l, true
		}
	}
	return Level{}, false
}

package store

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Collection is a thread-safe in-memory map of one resource type.
// Listing returns items sorted by id so pagination is stable. Nothing is
// persisted across restarts; the seed is reloaded on boot.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = item
}

// Delete reports whether the id existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[id]
	delete(c.items, id)
	return ok
}

func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a snapshot of every item, ordered by id.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

// Store holds every seeded resource collection.
type Store struct {
	Characters *Collection[Character]
	Teams      *Collection[Team]
	Matches    *Collection[Match]
	Episodes   *Collection[Episode]
	Quotes     *Collection[Quote]
}

type seedFile struct {
	Characters []Character `yaml:"characters"`
	Teams      []Team      `yaml:"teams"`
	Matches    []Match     `yaml:"matches"`
	Episodes   []Episode   `yaml:"episodes"`
	Quotes     []Quote     `yaml:"quotes"`
}

// New loads the embedded seed dataset into fresh collections.
func New() (*Store, error) {
	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	s := &Store{
		Characters: newCollection[Character](),
		Teams:      newCollection[Team](),
		Matches:    newCollection[Match](),
		Episodes:   newCollection[Episode](),
		Quotes:     newCollection[Quote](),
	}
	for _, c := range seed.Characters {
		s.Characters.Put(c.ID, c)
	}
	for _, t := range seed.Teams {
		s.Teams.Put(t.ID, t)
	}
	for _, m := range seed.Matches {
		s.Matches.Put(m.ID, m)
	}
	for _, e := range seed.Episodes {
		s.Episodes.Put(e.ID, e)
	}
	for _, q := range seed.Quotes {
		s.Quotes.Put(q.ID, q)
	}
	return s, nil
}

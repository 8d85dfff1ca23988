// Package cache implements the EV engine's memoization table: a canonical
// state key and a process-wide (per engine instance) map from key to the
// expected value already computed for that state.
//
// The design mirrors a chess engine's transposition table — probe before
// searching a node, store the result before returning — except the key
// here is a plain comparable Go struct rather than a Zobrist hash, so no
// hashing code is needed at all; Go's map implementation hashes the key
// for us.
package cache

import "blackjackev/internal/shoe"

// Action tags which of the four player decisions a cached value belongs
// to.
type Action int

const (
	Stand Action = iota
	Hit
	Double
	Split
)

// String renders the action the way a player would call it at the table.
func (a Action) String() string {
	switch a {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Key canonicalizes a recursion state for memoization. Two physically
// distinct game paths collapse to the same Key, and therefore the same
// cached EV, exactly when they agree on every field here — the shoe
// composition, the player's score and softness (not its raw hand: §4.4
// argues two hands of equal score and softness have identical future EV
// given the same shoe), the dealer's score, whether this state descends
// from a split, and which action is being evaluated.
type Key struct {
	Shoe        shoe.Shoe
	PlayerScore int
	PlayerSoft  bool
	DealerScore int
	SplitFlag   bool
	Action      Action
}

// Cache is a single engine instance's memoization table. It never evicts
// within a session; a fresh Cache is obtained by constructing a fresh
// engine.
type Cache struct {
	values map[Key]float64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{values: make(map[Key]float64)}
}

// Get returns the cached EV for key, if present.
func (c *Cache) Get(key Key) (float64, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set records the EV for key, overwriting any prior value (which would
// only happen if the same state were computed twice identically, in which
// case the value is unchanged anyway).
func (c *Cache) Set(key Key, value float64) {
	c.values[key] = value
}

// Len returns the number of distinct states currently cached.
func (c *Cache) Len() int {
	return len(c.values)
}

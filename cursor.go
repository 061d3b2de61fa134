package granary

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, world *World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances to the next matched entity. The first call locks the world;
// exhaustion resets the cursor and releases the lock.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.index < len(c.matched) {
		c.index++
		return true
	}
	c.Reset()
	return false
}

// Entities yields position and entity for every match, releasing the world
// lock when the loop ends or breaks early.
func (c *Cursor) Entities() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		if !c.initialized {
			c.initialize()
		}
		for c.index < len(c.matched) {
			e := c.matched[c.index]
			c.index++
			if !yield(c.index-1, e) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

// initialize snapshots the matched entities and locks the world so removals
// and destroys during iteration go through the operation queue.
func (c *Cursor) initialize() {
	c.world.Lock()
	c.matched = c.matched[:0]
	for e, sig := range c.world.signatures {
		if c.query.Evaluate(sig) {
			c.matched = append(c.matched, e)
		}
	}
	c.index = 0
	c.initialized = true
}

// CurrentEntity is the entity returned by the latest Next.
func (c *Cursor) CurrentEntity() Entity {
	return c.matched[c.index-1]
}

func (c *Cursor) Remaining() int {
	return len(c.matched) - c.index
}

// TotalMatched counts matching live entities without starting an iteration
// (and without taking the world lock).
func (c *Cursor) TotalMatched() int {
	total := 0
	for _, sig := range c.world.signatures {
		if c.query.Evaluate(sig) {
			total++
		}
	}
	return total
}

// Reset abandons the iteration and releases the world lock, flushing any
// operations enqueued while it was held.
func (c *Cursor) Reset() {
	if c.initialized {
		c.world.Unlock()
	}
	c.matched = nil
	c.index = 0
	c.initialized = false
}

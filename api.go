package granary

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque identifier naming a logical simulation object.
// Zero is reserved and never a valid entity.
type Entity uint32

// ComponentID is the stable bit position assigned to a registered component type.
type ComponentID uint32

// System is satisfied by any struct embedding Membership. RegisterSystem binds
// the embedded Membership to the system's matched-entity set.
type System interface {
	bind(*matchedSet)
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

// QueryNode evaluates a single entity signature against the node's criteria.
type QueryNode interface {
	Evaluate(signature mask.Mask) bool
}

type iCursor interface {
	Entities() iter.Seq2[int, Entity]
	Next() bool
}

type Cache[K comparable, T any] interface {
	GetIndex(K) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(K, T) (int, error)
	Len() int
}

// Cursor iterates the live entities matched by a query. The world is locked
// for the duration of iteration and unlocked (flushing any enqueued
// operations) when the cursor is exhausted or Reset.
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The world to iterate over
	world *World

	// Current iteration state
	matched []Entity
	index   int

	// Initialization state
	initialized bool
}

type SimpleCache[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
}

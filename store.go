package granary

import "fmt"

// anyStore is the type-erased handle for one component store. Handles live in
// a slice indexed by ComponentID; lookups never go through type names.
type anyStore interface {
	token() Component
	addBoxed(Entity, any) error
	removeEntity(Entity) error
	hasEntity(Entity) bool
	length() int
}

var _ anyStore = &ComponentStore[struct{}]{}

// ComponentStore holds every instance of one component type in a dense array
// plus a bidirectional entity<->slot mapping. Slots reorder on removal, so
// iteration order is unstable across removals.
type ComponentStore[T any] struct {
	comp     Component
	dense    []T
	entities []Entity       // slot -> owning entity
	slots    map[Entity]int // entity -> slot
}

func newComponentStore[T any](comp Component) *ComponentStore[T] {
	return &ComponentStore[T]{
		comp:  comp,
		slots: make(map[Entity]int),
	}
}

func (s *ComponentStore[T]) token() Component {
	return s.comp
}

func (s *ComponentStore[T]) length() int {
	return len(s.dense)
}

func (s *ComponentStore[T]) hasEntity(e Entity) bool {
	_, ok := s.slots[e]
	return ok
}

func (s *ComponentStore[T]) add(e Entity, value T) error {
	if _, ok := s.slots[e]; ok {
		return ComponentExistsError{Entity: e, Type: s.comp.typ}
	}
	s.slots[e] = len(s.dense)
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, e)
	return nil
}

// addBoxed is the queue-side add; the value was boxed at enqueue time.
func (s *ComponentStore[T]) addBoxed(e Entity, value any) error {
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("queued value %T is not a %v", value, s.comp.typ)
	}
	return s.add(e, v)
}

// removeEntity swap-removes: the last element is copied into the vacated
// slot, its owner's slot mapping is redirected, and the array shrinks by one.
// The array stays dense; order is not preserved.
func (s *ComponentStore[T]) removeEntity(e Entity) error {
	slot, ok := s.slots[e]
	if !ok {
		return ComponentNotFoundError{Entity: e, Type: s.comp.typ}
	}
	last := len(s.dense) - 1
	moved := s.entities[last]
	s.dense[slot] = s.dense[last]
	s.entities[slot] = moved
	s.slots[moved] = slot

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	delete(s.slots, e)
	return nil
}

func (s *ComponentStore[T]) get(e Entity) (*T, error) {
	slot, ok := s.slots[e]
	if !ok {
		return nil, ComponentNotFoundError{Entity: e, Type: s.comp.typ}
	}
	return &s.dense[slot], nil
}

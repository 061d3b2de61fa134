package granary

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

type matchedSet struct {
	entities map[Entity]struct{}
}

// Membership is embedded by system structs and gives read access to the
// world-maintained matched-entity set. The zero value matches nothing until
// the system is registered.
type Membership struct {
	ms *matchedSet
}

func (m *Membership) bind(ms *matchedSet) {
	m.ms = ms
}

// Contains reports in O(1) whether e currently matches the system.
func (m *Membership) Contains(e Entity) bool {
	if m.ms == nil {
		return false
	}
	_, ok := m.ms.entities[e]
	return ok
}

func (m *Membership) Count() int {
	if m.ms == nil {
		return 0
	}
	return len(m.ms.entities)
}

// All iterates the live matched set in unspecified order. The set must not be
// mutated mid-iteration; loop bodies that add or remove components should
// iterate Entities instead, or go through the Enqueue operations under a lock.
func (m *Membership) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if m.ms == nil {
			return
		}
		for e := range m.ms.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Entities returns a snapshot of the matched set. The snapshot stays valid
// while the world mutates, so it is the safe way to destroy entities or
// remove components from inside an update loop.
func (m *Membership) Entities() []Entity {
	return iter_util.Collect(m.All())
}

type systemEntry struct {
	required mask.Mask
	ms       *matchedSet
	instance any
}

// RegisterSystem instantiates S exactly once, records the required signature
// built from comps, and binds the embedded Membership. Registration scans all
// live entities, so a system registered late picks up pre-existing matches
// immediately. Registering an already-registered system type returns the
// existing instance together with AlreadyRegisteredError.
func RegisterSystem[S any](w *World, comps ...Component) (*S, error) {
	typ := reflect.TypeFor[S]()
	if idx, ok := w.systems.GetIndex(typ); ok {
		w.logger.Warn().Str("system", typ.String()).Msg("system type already registered")
		entry := *w.systems.GetItem(idx)
		return entry.instance.(*S), AlreadyRegisteredError{Type: typ}
	}

	sys := new(S)
	bindable, ok := any(sys).(System)
	if !ok {
		return nil, InvalidSystemError{Type: typ}
	}

	var required mask.Mask
	for _, c := range comps {
		if !w.tokenRegistered(c) {
			return nil, UnregisteredComponentError{Type: c.typ}
		}
		required.Mark(uint32(c.id))
	}

	ms := &matchedSet{entities: make(map[Entity]struct{})}
	bindable.bind(ms)
	entry := &systemEntry{required: required, ms: ms, instance: sys}
	if _, err := w.systems.Register(typ, entry); err != nil {
		return nil, err
	}

	// Retroactive scan: entities created before registration match too.
	for e, sig := range w.signatures {
		if sig.ContainsAll(required) {
			ms.entities[e] = struct{}{}
		}
	}

	w.logger.Debug().Str("system", typ.String()).Int("matched", len(ms.entities)).Msg("system registered")
	return sys, nil
}

// GetSystem returns the registered instance of S.
func GetSystem[S any](w *World) (*S, error) {
	typ := reflect.TypeFor[S]()
	idx, ok := w.systems.GetIndex(typ)
	if !ok {
		return nil, UnregisteredSystemError{Type: typ}
	}
	entry := *w.systems.GetItem(idx)
	return entry.instance.(*S), nil
}

// onSignatureChanged re-evaluates the one mutated entity against every
// registered system. System count is small and static relative to entity
// count; no full entity rescan ever happens here.
func (w *World) onSignatureChanged(e Entity, sig mask.Mask) {
	for i := 0; i < w.systems.Len(); i++ {
		entry := *w.systems.GetItem(i)
		if sig.ContainsAll(entry.required) {
			entry.ms.entities[e] = struct{}{}
		} else {
			delete(entry.ms.entities, e)
		}
	}
}

// onEntityDestroyed drops the entity from every matched set, including sets
// of systems with an empty required signature.
func (w *World) onEntityDestroyed(e Entity) {
	for i := 0; i < w.systems.Len(); i++ {
		entry := *w.systems.GetItem(i)
		delete(entry.ms.entities, e)
	}
}

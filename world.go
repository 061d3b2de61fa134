package granary

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

// World owns all entity, component, and system state. A host application
// creates one (or several independent) worlds and routes every operation
// through it; there are no package-level registries.
type World struct {
	cfg    config
	logger zerolog.Logger

	// Entity allocator state. An entity is live iff it has a signature entry.
	signatures map[Entity]mask.Mask
	recycled   []Entity
	highWater  uint32

	// Registries. Store handles are resolved by ComponentID, never by type name.
	components *SimpleCache[reflect.Type, Component]
	stores     []anyStore
	systems    *SimpleCache[reflect.Type, *systemEntry]

	lockCount int
	opQueue   opQueue
}

func newWorld(opts ...Option) *World {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &World{
		cfg:        cfg,
		logger:     cfg.logger,
		signatures: make(map[Entity]mask.Mask),
		components: newSimpleCache[reflect.Type, Component](cfg.maxComponentTypes),
		systems:    newSimpleCache[reflect.Type, *systemEntry](0),
		opQueue:    newOpQueue(),
	}
}

// Logger exposes the world's logger so hosts can attach context.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

func (w *World) Locked() bool {
	return w.lockCount > 0
}

// Lock defers all mutating operations until the matching Unlock. Locks nest;
// cursors hold one for the duration of iteration.
func (w *World) Lock() {
	w.lockCount++
}

// Unlock releases one lock. Releasing the last lock flushes the operation
// queue: creates first, then component mutations, then destroys.
func (w *World) Unlock() {
	if w.lockCount == 0 {
		return
	}
	w.lockCount--
	if w.lockCount == 0 {
		w.processOperationQueue()
	}
}

// addBoxedComponent is the type-erased add path used by the operation queue.
// Ordering is mandatory: store mutation, then signature bit, then propagation.
func (w *World) addBoxedComponent(e Entity, c Component, value any) error {
	sig, ok := w.signatures[e]
	if !ok {
		return EntityNotFoundError{Entity: e}
	}
	if err := w.stores[c.id].addBoxed(e, value); err != nil {
		return err
	}
	sig.Mark(uint32(c.id))
	w.signatures[e] = sig
	w.onSignatureChanged(e, sig)
	return nil
}

func (w *World) removeComponentByID(e Entity, id ComponentID) error {
	sig, ok := w.signatures[e]
	if !ok {
		return EntityNotFoundError{Entity: e}
	}
	if err := w.stores[id].removeEntity(e); err != nil {
		return err
	}
	sig.Unmark(uint32(id))
	w.signatures[e] = sig
	w.onSignatureChanged(e, sig)
	return nil
}

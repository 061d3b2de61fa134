package granary

import (
	"fmt"
	"math"

	"github.com/TheBitDrifter/mask"
)

// Fresh entity IDs become available in batches, amortizing allocation cost.
const entityBatchSize = 100

// NewEntity returns an unused non-zero entity ID with an empty signature.
// Destroyed IDs are reused (most recently destroyed first) before a fresh
// batch is issued. Fails with CapacityError only once the full uint32 ID
// space is live.
func (w *World) NewEntity() (Entity, error) {
	if w.Locked() {
		return 0, LockedWorldError{}
	}
	if len(w.recycled) == 0 {
		if err := w.refillPool(); err != nil {
			return 0, err
		}
	}
	e := w.recycled[len(w.recycled)-1]
	w.recycled = w.recycled[:len(w.recycled)-1]
	var empty mask.Mask
	w.signatures[e] = empty
	w.onSignatureChanged(e, empty)
	return e, nil
}

// refillPool pushes a fresh batch in descending order so the lowest new ID
// pops first. The exhaustion check never overflows: highWater only advances
// by the clamped batch size.
func (w *World) refillPool() error {
	remaining := uint32(math.MaxUint32) - w.highWater
	if remaining == 0 {
		return CapacityError{Resource: "entity IDs", Limit: math.MaxUint32}
	}
	batch := uint32(entityBatchSize)
	if remaining < batch {
		batch = remaining
	}
	for i := batch; i >= 1; i-- {
		w.recycled = append(w.recycled, Entity(w.highWater+i))
	}
	w.highWater += batch
	return nil
}

// DestroyEntity removes every component the entity holds (store, signature
// bit, and system membership updated per component, in that order), drops it
// from all systems, and recycles the ID. Destroying a dead or never-allocated
// entity reports EntityNotFoundError and changes nothing.
func (w *World) DestroyEntity(e Entity) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	sig, ok := w.signatures[e]
	if !ok {
		w.logger.Warn().Uint32("entity", uint32(e)).Msg("destroy requested for unknown entity")
		return EntityNotFoundError{Entity: e}
	}
	for id := range w.stores {
		sig = w.signatures[e]
		if sig.ContainsAll(bitOf(ComponentID(id))) {
			if err := w.removeComponentByID(e, ComponentID(id)); err != nil {
				return fmt.Errorf("failed to remove component during destroy: %w", err)
			}
		}
	}
	w.onEntityDestroyed(e)
	delete(w.signatures, e)
	w.recycled = append(w.recycled, e)
	return nil
}

// EntityExists reports liveness in O(1).
func (w *World) EntityExists(e Entity) bool {
	_, ok := w.signatures[e]
	return ok
}

// EntityCount is the number of live entities.
func (w *World) EntityCount() int {
	return len(w.signatures)
}

// Signature returns the entity's current component bitset.
func (w *World) Signature(e Entity) (mask.Mask, error) {
	sig, ok := w.signatures[e]
	if !ok {
		var zero mask.Mask
		return zero, EntityNotFoundError{Entity: e}
	}
	return sig, nil
}

// EnqueueNewEntities creates n entities immediately, or defers creation until
// the world unlocks.
func (w *World) EnqueueNewEntities(n int) error {
	if !w.Locked() {
		for i := 0; i < n; i++ {
			if _, err := w.NewEntity(); err != nil {
				return fmt.Errorf("failed to create entities directly: %w", err)
			}
		}
		return nil
	}
	w.opQueue.createOps = append(w.opQueue.createOps, operation{
		typ:    opCreate,
		amount: n,
	})
	return nil
}

// EnqueueDestroyEntities destroys immediately when unlocked, otherwise queues
// the destroys. A queued destroy cancels any pending component operations on
// the same entity.
func (w *World) EnqueueDestroyEntities(entities ...Entity) error {
	if !w.Locked() {
		for _, e := range entities {
			if err := w.DestroyEntity(e); err != nil {
				return err
			}
		}
		return nil
	}
	w.opQueue.EnqueueDestroy(entities)
	return nil
}

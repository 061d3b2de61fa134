package granary

type operation struct {
	typ    operationType
	amount int
	entity Entity
	comp   Component
	value  any
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
)

// opCanceled marks component operations voided by a later destroy.
const opCanceled operationType = -1

type opKey struct {
	entity Entity
	comp   ComponentID
}

type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

// EnqueueComponentOp queues an add or remove. Ops coalesce per
// entity/component pair: the latest enqueued op wins. Ops against an entity
// already queued for destroy are dropped.
func (q *opQueue) EnqueueComponentOp(typ operationType, e Entity, comp Component, value any) {
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}

	key := opKey{entity: e, comp: comp.id}
	if existingIdx, exists := q.pendingMods[key]; exists {
		existingOp := &q.componentOps[existingIdx]
		existingOp.typ = typ
		existingOp.value = value
		return
	}

	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		comp:   comp,
		value:  value,
	})
}

// EnqueueDestroy queues destroys, cancelling any pending component ops for
// the same entities.
func (q *opQueue) EnqueueDestroy(entities []Entity) {
	for _, e := range entities {
		if _, exists := q.pendingDestroy[e]; exists {
			continue
		}
		q.pendingDestroy[e] = struct{}{}

		for key, idx := range q.pendingMods {
			if key.entity == e {
				q.componentOps[idx].typ = opCanceled
				delete(q.pendingMods, key)
			}
		}

		q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: e})
	}
}

// processOperationQueue flushes in order: creates, component mutations,
// destroys. Individual failures (an entity died, a redundant mutation) are
// warnings; they cannot corrupt state because each op re-validates.
func (w *World) processOperationQueue() {
	q := &w.opQueue
	if len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0 {
		return
	}

	for _, op := range q.createOps {
		for i := 0; i < op.amount; i++ {
			if _, err := w.NewEntity(); err != nil {
				w.logger.Err(err).Msg("failed to create queued entities")
				return
			}
		}
	}

	for _, op := range q.componentOps {
		if op.typ == opCanceled {
			continue
		}
		if !w.EntityExists(op.entity) {
			continue
		}
		var err error
		switch op.typ {
		case opAddComponent:
			err = w.addBoxedComponent(op.entity, op.comp, op.value)
		case opRemoveComponent:
			err = w.removeComponentByID(op.entity, op.comp.id)
		}
		if err != nil {
			w.logger.Warn().Err(err).Uint32("entity", uint32(op.entity)).Msg("queued component operation skipped")
		}
	}

	for _, op := range q.destroyOps {
		if err := w.DestroyEntity(op.entity); err != nil {
			w.logger.Warn().Err(err).Uint32("entity", uint32(op.entity)).Msg("queued destroy skipped")
		}
	}

	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

package granary

import "reflect"

func storeFor[T any](w *World) (*ComponentStore[T], error) {
	typ := reflect.TypeFor[T]()
	idx, ok := w.components.GetIndex(typ)
	if !ok {
		return nil, UnregisteredComponentError{Type: typ}
	}
	return w.stores[idx].(*ComponentStore[T]), nil
}

// AddComponent attaches value to e under T. The entity must be live and must
// not already hold T. Mutation order is fixed: store append, signature bit,
// system membership propagation.
func AddComponent[T any](w *World, e Entity, value T) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	st, err := storeFor[T](w)
	if err != nil {
		return err
	}
	sig, ok := w.signatures[e]
	if !ok {
		w.logger.Warn().Uint32("entity", uint32(e)).Str("component", st.comp.typ.String()).Msg("add component on unknown entity")
		return EntityNotFoundError{Entity: e}
	}
	if err := st.add(e, value); err != nil {
		w.logger.Warn().Uint32("entity", uint32(e)).Str("component", st.comp.typ.String()).Msg("component already present")
		return err
	}
	sig.Mark(uint32(st.comp.id))
	w.signatures[e] = sig
	w.onSignatureChanged(e, sig)
	return nil
}

// RemoveComponent detaches T from e via swap-remove. Removing a component the
// entity lacks is a reported no-op.
func RemoveComponent[T any](w *World, e Entity) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	st, err := storeFor[T](w)
	if err != nil {
		return err
	}
	if _, ok := w.signatures[e]; !ok {
		w.logger.Warn().Uint32("entity", uint32(e)).Str("component", st.comp.typ.String()).Msg("remove component on unknown entity")
		return EntityNotFoundError{Entity: e}
	}
	if err := w.removeComponentByID(e, st.comp.id); err != nil {
		w.logger.Warn().Uint32("entity", uint32(e)).Str("component", st.comp.typ.String()).Msg("component not present")
		return err
	}
	return nil
}

// GetComponent returns a pointer into T's dense array. The pointer is
// invalidated by any subsequent Add or Remove on the same component type;
// callers must not retain it across such calls.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	st, err := storeFor[T](w)
	if err != nil {
		return nil, err
	}
	if _, ok := w.signatures[e]; !ok {
		return nil, EntityNotFoundError{Entity: e}
	}
	return st.get(e)
}

// HasComponent reports in O(1) whether e holds T. Unregistered types and dead
// entities report false.
func HasComponent[T any](w *World, e Entity) bool {
	st, err := storeFor[T](w)
	if err != nil {
		return false
	}
	return st.hasEntity(e)
}

// ComponentCount is the number of live holders of T (the dense array length).
func ComponentCount[T any](w *World) (int, error) {
	st, err := storeFor[T](w)
	if err != nil {
		return 0, err
	}
	return st.length(), nil
}

// EnqueueAddComponent adds immediately when the world is unlocked, otherwise
// queues the add for the final Unlock.
func EnqueueAddComponent[T any](w *World, e Entity, value T) error {
	if !w.Locked() {
		return AddComponent(w, e, value)
	}
	c, err := ComponentFor[T](w)
	if err != nil {
		return err
	}
	w.opQueue.EnqueueComponentOp(opAddComponent, e, c, value)
	return nil
}

// EnqueueRemoveComponent removes immediately when the world is unlocked,
// otherwise queues the removal for the final Unlock.
func EnqueueRemoveComponent[T any](w *World, e Entity) error {
	if !w.Locked() {
		return RemoveComponent[T](w, e)
	}
	c, err := ComponentFor[T](w)
	if err != nil {
		return err
	}
	w.opQueue.EnqueueComponentOp(opRemoveComponent, e, c, nil)
	return nil
}

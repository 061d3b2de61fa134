package granary

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// Component is the registration token for one component type within one
// world. Tokens are handed to RegisterSystem and to query builders.
type Component struct {
	id  ComponentID
	typ reflect.Type
}

func (c Component) ID() ComponentID {
	return c.id
}

func (c Component) Type() reflect.Type {
	return c.typ
}

// bitOf is the single-bit mask for a component's signature position.
func bitOf(id ComponentID) mask.Mask {
	var m mask.Mask
	m.Mark(uint32(id))
	return m
}

// SignatureOf builds the union bitset of the given component tokens.
func SignatureOf(comps ...Component) mask.Mask {
	var m mask.Mask
	for _, c := range comps {
		m.Mark(uint32(c.id))
	}
	return m
}

// RegisterComponent assigns the next free bit position to T and creates its
// empty store. Bit positions are monotonic and never reused. Registering an
// already-registered type is a reported no-op: the existing token is returned
// together with AlreadyRegisteredError.
func RegisterComponent[T any](w *World) (Component, error) {
	typ := reflect.TypeFor[T]()
	if idx, ok := w.components.GetIndex(typ); ok {
		w.logger.Warn().Str("component", typ.String()).Msg("component type already registered")
		return *w.components.GetItem(idx), AlreadyRegisteredError{Type: typ}
	}
	if w.components.Len() >= w.cfg.maxComponentTypes {
		return Component{}, CapacityError{Resource: "component types", Limit: uint64(w.cfg.maxComponentTypes)}
	}
	token := Component{id: ComponentID(w.components.Len()), typ: typ}
	if _, err := w.components.Register(typ, token); err != nil {
		return Component{}, err
	}
	w.stores = append(w.stores, newComponentStore[T](token))
	w.logger.Debug().Str("component", typ.String()).Uint32("id", uint32(token.id)).Msg("component registered")
	return token, nil
}

// ComponentFor returns the token for a previously registered type.
func ComponentFor[T any](w *World) (Component, error) {
	typ := reflect.TypeFor[T]()
	idx, ok := w.components.GetIndex(typ)
	if !ok {
		return Component{}, UnregisteredComponentError{Type: typ}
	}
	return *w.components.GetItem(idx), nil
}

// GetComponentID returns T's stable bit position.
func GetComponentID[T any](w *World) (ComponentID, error) {
	c, err := ComponentFor[T](w)
	if err != nil {
		return 0, err
	}
	return c.id, nil
}

// tokenRegistered guards against tokens minted by a different world.
func (w *World) tokenRegistered(c Component) bool {
	if c.typ == nil {
		return false
	}
	idx, ok := w.components.GetIndex(c.typ)
	return ok && ComponentID(idx) == c.id
}

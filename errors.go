package granary

import (
	"fmt"
	"reflect"
)

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is locked for iteration"
}

// CapacityError reports an exhausted fixed resource: component-type bits or
// the entity ID space. The failed call registers or allocates nothing.
type CapacityError struct {
	Resource string
	Limit    uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("%s capacity exhausted (limit %d)", e.Resource, e.Limit)
}

type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.Entity)
}

type ComponentExistsError struct {
	Entity Entity
	Type   reflect.Type
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component %v already present on entity %d", e.Type, e.Entity)
}

type ComponentNotFoundError struct {
	Entity Entity
	Type   reflect.Type
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %v not present on entity %d", e.Type, e.Entity)
}

type UnregisteredComponentError struct {
	Type reflect.Type
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component type %v is not registered", e.Type)
}

type UnregisteredSystemError struct {
	Type reflect.Type
}

func (e UnregisteredSystemError) Error() string {
	return fmt.Sprintf("system type %v is not registered", e.Type)
}

type InvalidSystemError struct {
	Type reflect.Type
}

func (e InvalidSystemError) Error() string {
	return fmt.Sprintf("system type %v does not embed granary.Membership", e.Type)
}

type AlreadyRegisteredError struct {
	Type reflect.Type
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%v is already registered", e.Type)
}

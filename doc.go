/*
Package granary provides an Entity-Component-System (ECS) runtime for games and simulations.

Granary keeps each component type in its own packed, contiguous store (a sparse set),
giving O(1) add, remove, and lookup while staying dense for iteration. Systems declare
the component combination they care about and granary keeps each system's entity set in
sync automatically after every mutation.

Core Concepts:

  - World: the explicit context owning all entities, stores, and systems.
  - Entity: a unique non-zero identifier that represents a simulation object.
  - Component: a plain data value attached to an entity under a registered type.
  - Signature: a bitmask recording which component types an entity holds.
  - System: a logic unit with a required signature and a maintained matched-entity set.

Basic Usage:

	// Create a world
	world := granary.Factory.NewWorld()

	// Register components
	position, _ := granary.RegisterComponent[Position](world)
	velocity, _ := granary.RegisterComponent[Velocity](world)

	// Register a system requiring both
	movement, _ := granary.RegisterSystem[MovementSystem](world, position, velocity)

	// Create an entity and attach data
	e, _ := world.NewEntity()
	granary.AddComponent(world, e, Position{X: 0, Y: 0})
	granary.AddComponent(world, e, Velocity{X: 1, Y: 1})

	// Iterate the system's matched entities
	for _, e := range movement.Entities() {
		pos, _ := granary.GetComponent[Position](world, e)
		vel, _ := granary.GetComponent[Velocity](world, e)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Component stores reorder on removal (swap-remove), so iteration order over a store or a
matched set is unstable and pointers returned by GetComponent are invalidated by any
Add or Remove on the same component type. Systems that mutate membership while iterating
should either walk a snapshot (Entities) or use the Enqueue variants under a lock.

Granary is not internally synchronized: all mutating calls must come from a single
logical owner.
*/
package granary

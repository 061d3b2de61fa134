package granary_test

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/silt-labs/granary"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Movement advances positions by their velocity each tick.
type Movement struct {
	granary.Membership
}

func Example_basic() {
	world := granary.Factory.NewWorld(granary.WithLogger(zerolog.Nop()))

	position, _ := granary.RegisterComponent[Position](world)
	velocity, _ := granary.RegisterComponent[Velocity](world)

	movement, _ := granary.RegisterSystem[Movement](world, position, velocity)

	mover, _ := world.NewEntity()
	granary.AddComponent(world, mover, Position{X: 0, Y: 0})
	granary.AddComponent(world, mover, Velocity{X: 1, Y: 2})

	scenery, _ := world.NewEntity()
	granary.AddComponent(world, scenery, Position{X: 100, Y: 100})

	// Run three ticks of the movement system.
	for tick := 0; tick < 3; tick++ {
		for _, e := range movement.Entities() {
			pos, _ := granary.GetComponent[Position](world, e)
			vel, _ := granary.GetComponent[Velocity](world, e)
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}

	moved, _ := granary.GetComponent[Position](world, mover)
	still, _ := granary.GetComponent[Position](world, scenery)
	fmt.Printf("mover: (%.0f, %.0f)\n", moved.X, moved.Y)
	fmt.Printf("scenery: (%.0f, %.0f)\n", still.X, still.Y)
	// Output:
	// mover: (3, 6)
	// scenery: (100, 100)
}

func Example_queries() {
	world := granary.Factory.NewWorld(granary.WithLogger(zerolog.Nop()))

	position, _ := granary.RegisterComponent[Position](world)
	velocity, _ := granary.RegisterComponent[Velocity](world)

	for i := 0; i < 3; i++ {
		e, _ := world.NewEntity()
		granary.AddComponent(world, e, Position{X: float64(i)})
		if i%2 == 0 {
			granary.AddComponent(world, e, Velocity{X: 1})
		}
	}

	// Entities with a Position but no Velocity.
	query := granary.Factory.NewQuery()
	static := query.And(position, query.Not(velocity))

	cursor := granary.Factory.NewCursor(static, world)
	var matched []granary.Entity
	for cursor.Next() {
		matched = append(matched, cursor.CurrentEntity())
	}
	slices.Sort(matched)

	fmt.Println("static entities:", len(matched))
	for _, e := range matched {
		pos, _ := granary.GetComponent[Position](world, e)
		fmt.Printf("entity %d at x=%.0f\n", e, pos.X)
	}
	// Output:
	// static entities: 1
	// entity 2 at x=1
}

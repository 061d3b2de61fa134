// Profiling:
// go build ./profile/simulate
// go tool pprof -http=":8000" -nodefraction=0.001 ./simulate mem.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/silt-labs/granary"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type movement struct {
	granary.Membership
}

func main() {
	rounds := 50
	iters := 1000
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		world := granary.Factory.NewWorld(granary.WithLogger(zerolog.Nop()))
		pos, _ := granary.RegisterComponent[position](world)
		vel, _ := granary.RegisterComponent[velocity](world)
		mov, _ := granary.RegisterSystem[movement](world, pos, vel)

		for i := 0; i < numEntities; i++ {
			e, _ := world.NewEntity()
			granary.AddComponent(world, e, position{})
			granary.AddComponent(world, e, velocity{X: 1, Y: 1})
		}

		for range iters {
			for e := range mov.All() {
				p, _ := granary.GetComponent[position](world, e)
				v, _ := granary.GetComponent[velocity](world, e)
				p.X += v.X
				p.Y += v.Y
			}
		}

		for _, e := range mov.Entities() {
			world.DestroyEntity(e)
		}
	}
}

// Profiling:
// go build ./cmd/ecsprofile
// go tool pprof -http=":8000" -nodefraction=0.001 ./ecsprofile mem.pprof

package main

import (
	"github.com/kestrelnet/ecscore"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	cfg := ecscore.DefaultConfig()
	for round := 0; round < rounds; round++ {
		r := ecscore.NewRegistry(cfg)
		ids := make([]ecscore.EntityID, 0, numEntities)

		for iter := 0; iter < iters; iter++ {
			for i := 0; i < numEntities; i++ {
				e, err := r.Create()
				if err != nil {
					continue
				}
				ecscore.Add[position](r, e, position{X: float64(i)}, ecscore.Standard, cfg.Component)
				ecscore.Add[velocity](r, e, velocity{X: 1, Y: 1}, ecscore.Standard, cfg.Component)
				ids = append(ids, e)
			}

			for _, e := range ids {
				pos, err := ecscore.Get[position](r, e)
				if err != nil {
					continue
				}
				vel, err := ecscore.Get[velocity](r, e)
				if err != nil {
					continue
				}
				pos.X += vel.X
				pos.Y += vel.Y
			}

			for _, e := range ids {
				r.Destroy(e)
			}
			ids = ids[:0]
		}
	}
}

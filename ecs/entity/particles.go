package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// NewParticleBurst spawns count particles at origin flying outward and up.
func NewParticleBurst(w *ecs.World, origin common.Vec3, count int, spec prefabs.ParticleSpec, r *rand.Rand) (ecs.Entity, error) {
	if count <= 0 {
		return 0, nil
	}
	burst := &component.ParticleBurst{
		Positions:  make([]common.Vec3, count),
		Velocities: make([]common.Vec3, count),
		Life:       spec.LifeSeconds,
	}
	for i := range count {
		burst.Positions[i] = origin
		burst.Velocities[i] = common.Vec3{
			X: (r.Float64() - 0.5) * spec.Spread,
			Y: r.Float64()*spec.LiftRange + spec.LiftMin,
			Z: (r.Float64() - 0.5) * spec.Spread,
		}
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ParticleBurstComponent.Kind(), burst); err != nil {
		return 0, fmt.Errorf("particles: add burst: %w", err)
	}
	return e, nil
}

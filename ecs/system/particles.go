package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// ParticleSystem animates bursts and destroys them when their life runs out.
// It keeps running after death so the last bursts finish.
type ParticleSystem struct {
	tuning *prefabs.Tuning
}

func NewParticleSystem(t *prefabs.Tuning) *ParticleSystem {
	return &ParticleSystem{tuning: t}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := clock(w).DT
	spec := s.tuning.Particles
	fall := s.tuning.Physics.Gravity * spec.GravityScale

	ecs.ForEach(w, component.ParticleBurstComponent.Kind(), func(e ecs.Entity, b *component.ParticleBurst) {
		b.Life -= dt
		if b.Life <= 0 {
			ecs.DestroyEntity(w, e)
			return
		}
		for i := range b.Positions {
			b.Positions[i] = b.Positions[i].Add(b.Velocities[i].Scale(dt * spec.Speed))
			b.Velocities[i].Y += fall
		}
	})
}

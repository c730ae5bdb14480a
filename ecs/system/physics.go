package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/prefabs"
)

// PhysicsSystem integrates gravity once per tick.
type PhysicsSystem struct {
	tuning *prefabs.Tuning
}

func NewPhysicsSystem(t *prefabs.Tuning) *PhysicsSystem {
	return &PhysicsSystem{tuning: t}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	_, p, t, ok := activePlayer(w)
	if !ok {
		return
	}
	p.VelocityY += s.tuning.Physics.Gravity
	t.Y += p.VelocityY
}

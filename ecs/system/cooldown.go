package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

// CooldownSystem runs the obstacle hit cooldown down by the tick delta.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	dt := clock(w).DT
	ecs.ForEach(w, component.HitCooldownComponent.Kind(), func(_ ecs.Entity, cd *component.HitCooldown) {
		if cd.Seconds <= 0 {
			return
		}
		cd.Seconds -= dt
		if cd.Seconds < 0 {
			cd.Seconds = 0
		}
	})
}

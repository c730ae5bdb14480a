package system

import (
	"math"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// LandingSystem snaps a falling player onto the first platform, in spawn
// order, whose landing window contains it. At most one landing per tick.
type LandingSystem struct {
	tuning *prefabs.Tuning
}

func NewLandingSystem(t *prefabs.Tuning) *LandingSystem {
	return &LandingSystem{tuning: t}
}

func (s *LandingSystem) Update(w *ecs.World) {
	e, p, t, ok := activePlayer(w)
	if !ok || p.VelocityY > 0 {
		return
	}

	spec := s.tuning.Landing
	landed := false
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, pt *component.Transform) {
		if landed {
			return
		}
		if math.Abs(t.X-pt.X) >= spec.HalfWidth || math.Abs(t.Z-pt.Z) >= spec.HalfWidth {
			return
		}
		if t.Y < pt.Y-spec.BelowTolerance || t.Y > pt.Y+spec.AboveTolerance {
			return
		}

		fromAir := p.Jumping
		t.Y = pt.Y + spec.SnapOffset
		p.VelocityY = 0
		p.Jumping = false
		p.DoubleJumpUsed = false
		landed = true
		if fromAir {
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Entity: e})
		}
	})
}

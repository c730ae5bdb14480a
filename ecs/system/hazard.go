package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/prefabs"
)

// HazardSystem moves obstacles and knocks the player back on contact. After
// a hit the player is immune until the hit cooldown runs out.
type HazardSystem struct {
	tuning *prefabs.Tuning
	rng    *rand.Rand
}

func NewHazardSystem(t *prefabs.Tuning, r *rand.Rand) *HazardSystem {
	return &HazardSystem{tuning: t, rng: r}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	spec := s.tuning.Obstacles
	factor := 1 + float64(difficulty(w))*spec.MotionDifficulty

	dt := clock(w).DT
	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.OscillatorComponent.Kind(), func(_ ecs.Entity, ob *component.Obstacle, t *component.Transform, o *component.Oscillator) {
		oscillate(t, o, factor)
		if ob.Flash > 0 {
			ob.Flash = max(0, ob.Flash-dt)
		}
	})

	player, p, pt, ok := activePlayer(w)
	if !ok {
		return
	}
	cd, ok := ecs.Get(w, player, component.HitCooldownComponent.Kind())
	if !ok {
		return
	}

	hw := s.tuning.Player.HalfWidth
	footprint := cp.NewBBForExtents(cp.Vector{X: pt.X, Y: pt.Z}, hw, hw)
	bottom, top := pt.Y, pt.Y+s.tuning.Player.Height

	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.OscillatorComponent.Kind(), func(_ ecs.Entity, ob *component.Obstacle, t *component.Transform, o *component.Oscillator) {
		if cd.Seconds > 0 {
			return
		}
		if math.Abs(pt.Y-t.Y) >= spec.VerticalGate {
			return
		}
		if bottom > t.Y+ob.HalfExtent || top < t.Y-ob.HalfExtent {
			return
		}
		box := cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Z}, ob.HalfExtent, ob.HalfExtent)
		if !footprint.Intersects(box) {
			return
		}

		push := cp.Vector{X: pt.X - t.X, Y: pt.Z - t.Z}
		if push.Length() == 0 {
			// Dead center: shove along the obstacle's travel.
			push = cp.Vector{X: o.Speed}
			if o.Axis == component.AxisZ {
				push = cp.Vector{Y: o.Speed}
			}
		}
		if push.Length() > 0 {
			push = push.Normalize().Mult(spec.Knockback)
			pt.X += push.X
			pt.Z += push.Y
		}
		pt.Y += spec.Bounce
		p.VelocityY = spec.BounceVelocity
		cd.Seconds = spec.HitCooldownSeconds
		ob.Flash = spec.FlashSeconds

		if _, err := entity.NewParticleBurst(w, pt.Vec(), spec.Particles, s.tuning.Particles, s.rng); err != nil {
			log.Printf("hazard: burst: %v", err)
		}
		w.Events().Push(ecs.Event{Type: ecs.EventObstacleHit, Entity: player})
	})
}

// ObstacleHalfExtent is the collision half-size of an obstacle spawned at the
// given difficulty.
func ObstacleHalfExtent(spec prefabs.ObstacleSpec, difficulty int) float64 {
	return math.Min(spec.HalfExtent+float64(difficulty)*spec.GrowthPerLevel, spec.MaxHalfExtent)
}

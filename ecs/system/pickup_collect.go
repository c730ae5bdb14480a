package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/prefabs"
)

// PickupCollectSystem pulls bananas toward a magnetized player and collects
// any within reach.
type PickupCollectSystem struct {
	tuning   *prefabs.Tuning
	rng      *rand.Rand
	progress Progress
}

func NewPickupCollectSystem(t *prefabs.Tuning, r *rand.Rand, progress Progress) *PickupCollectSystem {
	return &PickupCollectSystem{tuning: t, rng: r, progress: progress}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, _, pt, ok := activePlayer(w)
	if !ok {
		return
	}
	score, ok := ecs.Get(w, player, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	magnet := false
	if fx, ok := ecs.Get(w, player, component.EffectsComponent.Kind()); ok {
		magnet = fx.Active(component.PowerUpMagnet)
	}

	spec := s.tuning.Pickups
	dt := clock(w).DT
	ppos := pt.Vec()

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if pickup.Collected {
			return
		}

		if magnet {
			toPlayer := ppos.Sub(t.Vec())
			if toPlayer.Length() > spec.MagnetMinDistance {
				t.SetVec(t.Vec().Add(toPlayer.Normalize().Scale(spec.MagnetPull * dt * spec.MagnetRate)))
			}
		}

		pos := t.Vec()
		if pos.Distance(ppos) >= spec.CollectRadius {
			return
		}

		pickup.Collected = true
		score.Bananas += spec.Currency
		score.BonusScore += spec.Bonus
		score.Recompute()
		if s.progress != nil {
			s.progress.AddBananas(spec.Currency)
		}

		if _, err := entity.NewParticleBurst(w, pos, spec.Particles, s.tuning.Particles, s.rng); err != nil {
			log.Printf("pickup: burst: %v", err)
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventBananaCollected, Entity: player})
	})
}

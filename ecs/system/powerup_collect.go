package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/prefabs"
)

// PowerUpCollectSystem bobs power-ups in place and applies the effect of any
// the player touches.
type PowerUpCollectSystem struct {
	tuning *prefabs.Tuning
	rng    *rand.Rand
}

func NewPowerUpCollectSystem(t *prefabs.Tuning, r *rand.Rand) *PowerUpCollectSystem {
	return &PowerUpCollectSystem{tuning: t, rng: r}
}

func (s *PowerUpCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, p, pt, ok := activePlayer(w)
	if !ok {
		return
	}
	fx, ok := ecs.Get(w, player, component.EffectsComponent.Kind())
	if !ok {
		return
	}
	score, ok := ecs.Get(w, player, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	spec := s.tuning.PowerUps
	elapsed := clock(w).Elapsed
	ppos := pt.Vec()

	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pu *component.PowerUp, t *component.Transform) {
		t.Y = pu.SpawnY + math.Sin(elapsed*spec.BobSpeed+pu.BobPhase)*spec.BobAmplitude

		pos := t.Vec()
		if pos.Distance(ppos) >= spec.CollectRadius {
			return
		}

		fx.Activate(pu.Kind, spec.DurationSeconds)
		applyEffectStats(p, fx, s.tuning)
		score.BonusScore += spec.Bonus
		score.Recompute()

		if _, err := entity.NewParticleBurst(w, pos, spec.Particles, s.tuning.Particles, s.rng); err != nil {
			log.Printf("powerup: burst: %v", err)
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventPowerUpCollected, Entity: player, Data: pu.Kind})
	})
}

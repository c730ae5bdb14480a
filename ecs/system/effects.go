package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// EffectsSystem counts down timed power-ups by the tick delta and derives
// the player's move speed and jump velocity from whatever is still active.
// A single countdown per effect means a refresh can never be undone by an
// older expiry.
type EffectsSystem struct {
	tuning *prefabs.Tuning
}

func NewEffectsSystem(t *prefabs.Tuning) *EffectsSystem {
	return &EffectsSystem{tuning: t}
}

func (s *EffectsSystem) Update(w *ecs.World) {
	e, p, _, ok := activePlayer(w)
	if !ok {
		return
	}
	fx, ok := ecs.Get(w, e, component.EffectsComponent.Kind())
	if !ok {
		return
	}

	dt := clock(w).DT
	for _, kind := range component.PowerUpKinds {
		before := fx.Remaining(kind)
		if before <= 0 {
			continue
		}
		after := before - dt
		if after <= 0 {
			after = 0
			w.Events().Push(ecs.Event{Type: ecs.EventEffectExpired, Entity: e, Data: kind})
		}
		switch kind {
		case component.PowerUpSpeed:
			fx.Speed = after
		case component.PowerUpJump:
			fx.Jump = after
		case component.PowerUpMagnet:
			fx.Magnet = after
		}
	}

	applyEffectStats(p, fx, s.tuning)
}

func applyEffectStats(p *component.Player, fx *component.Effects, t *prefabs.Tuning) {
	p.MoveSpeed = t.Player.MoveSpeed
	if fx.Active(component.PowerUpSpeed) {
		p.MoveSpeed = t.Player.MoveSpeed * t.Player.SpeedMultiplier
	}
	p.JumpVelocity = t.Player.JumpVelocity
	if fx.Active(component.PowerUpJump) {
		p.JumpVelocity = t.Player.BoostedJumpVelocity
	}
}

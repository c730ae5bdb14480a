package entity

import (
	"fmt"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// NewPlayer spawns the climber at the tuned spawn point. The player starts
// alive but not ready; the session marks it ready once its model loads.
func NewPlayer(w *ecs.World, t *prefabs.Tuning, highScore int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: t.Player.Spawn.X,
		Y: t.Player.Spawn.Y,
		Z: t.Player.Spawn.Z,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    t.Player.MoveSpeed,
		JumpVelocity: t.Player.JumpVelocity,
		Alive:        true,
		Anim:         component.AnimIdle,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.EffectsComponent.Kind(), &component.Effects{}); err != nil {
		return 0, fmt.Errorf("player: add effects: %w", err)
	}
	if err := ecs.Add(w, e, component.HitCooldownComponent.Kind(), &component.HitCooldown{}); err != nil {
		return 0, fmt.Errorf("player: add hit cooldown: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), component.NewScore(highScore)); err != nil {
		return 0, fmt.Errorf("player: add score: %w", err)
	}

	return e, nil
}

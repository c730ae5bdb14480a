package entity

import (
	"fmt"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

func NewBanana(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, fmt.Errorf("banana: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{}); err != nil {
		return 0, fmt.Errorf("banana: add pickup: %w", err)
	}
	return e, nil
}

func NewPowerUp(w *ecs.World, pos common.Vec3, kind component.PowerUpKind, bobPhase float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, fmt.Errorf("powerup: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{
		Kind:     kind,
		SpawnY:   pos.Y,
		BobPhase: bobPhase,
	}); err != nil {
		return 0, fmt.Errorf("powerup: add powerup: %w", err)
	}
	return e, nil
}

// NewObstacle spawns an oscillating obstacle whose anchor is its spawn
// coordinate on the motion axis.
func NewObstacle(w *ecs.World, pos common.Vec3, axis component.Axis, rng, speed, halfExtent float64) (ecs.Entity, error) {
	anchor := pos.X
	if axis == component.AxisZ {
		anchor = pos.Z
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{HalfExtent: halfExtent}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle: %w", err)
	}
	if err := ecs.Add(w, e, component.OscillatorComponent.Kind(), &component.Oscillator{
		Axis:   axis,
		Range:  rng,
		Speed:  speed,
		Anchor: anchor,
	}); err != nil {
		return 0, fmt.Errorf("obstacle: add oscillator: %w", err)
	}
	return e, nil
}

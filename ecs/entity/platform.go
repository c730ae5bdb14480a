package entity

import (
	"fmt"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

// NewPlatform spawns a platform. The oscillator is stored for every
// platform so a static one keeps its generated range, but only moving
// platforms are advanced by the motion system.
func NewPlatform(w *ecs.World, id int, pos common.Vec3, kind component.PlatformKind, osc component.Oscillator) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{ID: id, Kind: kind}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := ecs.Add(w, e, component.OscillatorComponent.Kind(), &osc); err != nil {
		return 0, fmt.Errorf("platform: add oscillator: %w", err)
	}
	return e, nil
}

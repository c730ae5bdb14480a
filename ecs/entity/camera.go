package entity

import (
	"fmt"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

func NewCamera(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	smooth := t.Camera.Smoothness
	if smooth == 0 {
		smooth = 0.08
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		X:          t.Camera.Start.X,
		Y:          t.Camera.Start.Y,
		Z:          t.Camera.Start.Z,
		OffsetX:    t.Camera.Offset.X,
		OffsetY:    t.Camera.Offset.Y,
		OffsetZ:    t.Camera.Offset.Z,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

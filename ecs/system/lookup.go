package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

// activePlayer returns the player only while it is alive and its model is
// loaded; every gameplay system is inert otherwise.
func activePlayer(w *ecs.World) (ecs.Entity, *component.Player, *component.Transform, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Alive || !p.Ready {
		return 0, nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	return e, p, t, true
}

func clock(w *ecs.World) component.Clock {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return component.Clock{}
	}
	c, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return component.Clock{}
	}
	return *c
}

func generator(w *ecs.World) (*component.Generator, bool) {
	e, ok := ecs.First(w, component.GeneratorComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GeneratorComponent.Kind())
}

func difficulty(w *ecs.World) int {
	if gen, ok := generator(w); ok {
		return gen.Difficulty
	}
	return 0
}

func camera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CameraComponent.Kind())
}

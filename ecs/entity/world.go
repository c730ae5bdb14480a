package entity

import (
	"fmt"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// NewWorldState creates the singleton holding generation bookkeeping and the
// simulation clock.
func NewWorldState(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GeneratorComponent.Kind(), &component.Generator{
		SpawnAhead: t.World.SpawnAhead,
		PruneBelow: t.World.PruneBelow,
	}); err != nil {
		return 0, fmt.Errorf("world: add generator: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("world: add clock: %w", err)
	}
	return e, nil
}

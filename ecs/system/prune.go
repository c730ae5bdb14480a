package system

import (
	"math"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// PruneSystem destroys world entities left far below the best height.
// Obstacles get a little extra slack.
type PruneSystem struct {
	tuning *prefabs.Tuning
}

func NewPruneSystem(t *prefabs.Tuning) *PruneSystem {
	return &PruneSystem{tuning: t}
}

func (s *PruneSystem) Update(w *ecs.World) {
	e, _, _, ok := activePlayer(w)
	if !ok {
		return
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	if !ok || math.IsInf(score.MaxHeight, -1) {
		return
	}
	Prune(w, score.MaxHeight, s.tuning.World)
}

// Prune returns how many entities it destroyed.
func Prune(w *ecs.World, maxHeight float64, spec prefabs.WorldSpec) int {
	threshold := maxHeight + spec.PruneBelow
	removed := 0
	below := func(limit float64) func(ecs.Entity, *component.Transform) {
		return func(e ecs.Entity, t *component.Transform) {
			if t.Y < limit && ecs.DestroyEntity(w, e) {
				removed++
			}
		}
	}

	pruneKind(w, component.PlatformComponent.Kind(), below(threshold))
	pruneKind(w, component.PickupComponent.Kind(), below(threshold))
	pruneKind(w, component.PowerUpComponent.Kind(), below(threshold))
	pruneKind(w, component.ObstacleComponent.Kind(), below(threshold-spec.ObstaclePruneSlack))
	return removed
}

func pruneKind[T any](w *ecs.World, kind component.ComponentKind[T], fn func(ecs.Entity, *component.Transform)) {
	ecs.ForEach2(w, kind, component.TransformComponent.Kind(), func(e ecs.Entity, _ *T, t *component.Transform) {
		fn(e, t)
	})
}

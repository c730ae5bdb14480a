package system

import (
	"log"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/prefabs"
)

// DeathSystem ends the run once the player falls too far below the camera.
type DeathSystem struct {
	tuning *prefabs.Tuning
}

func NewDeathSystem(t *prefabs.Tuning) *DeathSystem {
	return &DeathSystem{tuning: t}
}

func (s *DeathSystem) Update(w *ecs.World) {
	e, p, t, ok := activePlayer(w)
	if !ok {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}
	if t.Y >= cam.Y-s.tuning.Camera.FallLimit {
		return
	}

	p.Alive = false
	log.Printf("player: fell at y=%.2f (camera y=%.2f)", t.Y, cam.Y)
	w.Events().Push(ecs.Event{Type: ecs.EventDied, Entity: e, Data: t.Y})
}

package system

import (
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

// AnimationSystem picks the player's animation from the settled tick state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	e, p, _, ok := activePlayer(w)
	if !ok {
		return
	}
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	switch {
	case p.Jumping:
		p.Anim = component.AnimJump
	case in != nil && in.Moving():
		p.Anim = component.AnimRun
	default:
		p.Anim = component.AnimIdle
	}
}

package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// MovementSystem consumes the frame's input: a jump edge first, then the
// horizontal step on the XZ plane.
type MovementSystem struct {
	tuning *prefabs.Tuning
}

func NewMovementSystem(t *prefabs.Tuning) *MovementSystem {
	return &MovementSystem{tuning: t}
}

func (s *MovementSystem) Update(w *ecs.World) {
	e, p, t, ok := activePlayer(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}

	if in.JumpPressed {
		in.JumpPressed = false
		switch {
		case !p.Jumping:
			p.VelocityY = p.JumpVelocity
			p.Jumping = true
			p.DoubleJumpUsed = false
			w.Events().Push(ecs.Event{Type: ecs.EventJumped, Entity: e})
		case !p.DoubleJumpUsed:
			p.VelocityY = p.JumpVelocity
			p.DoubleJumpUsed = true
			w.Events().Push(ecs.Event{Type: ecs.EventDoubleJumped, Entity: e})
		}
	}

	if !in.Moving() {
		return
	}

	// cp works in 2D; its Y is world Z here.
	dir := cp.Vector{X: in.MoveX, Y: in.MoveZ}.Normalize()
	step := dir.Mult(p.MoveSpeed)
	t.X += step.X
	t.Z += step.Y

	target := math.Atan2(dir.X, dir.Y)
	p.Facing = common.Lerp(p.Facing, target, s.tuning.Player.FacingLerp)
}

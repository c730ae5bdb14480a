package system

import (
	"math"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// PlatformMotionSystem slides moving platforms and gives them a cosmetic
// wobble. A player standing on one is not carried.
type PlatformMotionSystem struct {
	tuning *prefabs.Tuning
}

func NewPlatformMotionSystem(t *prefabs.Tuning) *PlatformMotionSystem {
	return &PlatformMotionSystem{tuning: t}
}

func (s *PlatformMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	factor := 1 + float64(difficulty(w))*s.tuning.Platforms.MotionDifficulty
	elapsed := clock(w).Elapsed
	amp := s.tuning.Platforms.TiltAmplitude

	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.OscillatorComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform, o *component.Oscillator) {
		if p.Kind != component.PlatformMoving {
			return
		}
		oscillate(t, o, factor)
		p.TiltX, p.TiltZ = platformTilt(elapsed, p.ID, amp)
	})
}

// platformTilt is the wobble for platform id at elapsed seconds. The two
// axes run at different rates so neighbours never sway in step.
func platformTilt(elapsed float64, id int, amp float64) (x, z float64) {
	fid := float64(id)
	return math.Sin(elapsed*0.5+fid) * amp, math.Sin(elapsed*0.35+fid*0.7) * amp
}

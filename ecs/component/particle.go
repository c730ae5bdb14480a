package component

import "github.com/milk9111/skyclimb/common"

// ParticleBurst is visual feedback only. Life counts down in seconds and the
// entity is destroyed when it reaches zero.
type ParticleBurst struct {
	Positions  []common.Vec3
	Velocities []common.Vec3
	Life       float64
}

var ParticleBurstComponent = NewComponent[ParticleBurst]("particle_burst")

package system

import (
	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
)

// CameraSystem eases the camera toward the player plus its offset.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	_, _, pt, ok := activePlayer(w)
	if !ok {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}
	cam.X = common.Lerp(cam.X, pt.X+cam.OffsetX, cam.Smoothness)
	cam.Y = common.Lerp(cam.Y, pt.Y+cam.OffsetY, cam.Smoothness)
	cam.Z = common.Lerp(cam.Z, pt.Z+cam.OffsetZ, cam.Smoothness)
}

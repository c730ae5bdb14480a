package component

import "github.com/milk9111/skyclimb/common"

// Transform is the shared base of every world entity: its position.
type Transform struct {
	X float64
	Y float64
	Z float64
}

func (t Transform) Vec() common.Vec3 {
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

func (t *Transform) SetVec(v common.Vec3) {
	t.X, t.Y, t.Z = v.X, v.Y, v.Z
}

var TransformComponent = NewComponent[Transform]("transform")

package component

// Camera trails the player; the fall-out rule is measured against its height.
type Camera struct {
	X float64
	Y float64
	Z float64

	OffsetX    float64
	OffsetY    float64
	OffsetZ    float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]("camera")

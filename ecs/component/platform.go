package component

type PlatformKind string

const (
	PlatformStatic PlatformKind = "static"
	PlatformMoving PlatformKind = "moving"
)

type Platform struct {
	ID   int
	Kind PlatformKind
	// Cosmetic tilt for moving platforms; never read by collision.
	TiltX float64
	TiltZ float64
}

var PlatformComponent = NewComponent[Platform]("platform")

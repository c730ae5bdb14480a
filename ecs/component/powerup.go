package component

type PowerUpKind string

const (
	PowerUpSpeed  PowerUpKind = "speed"
	PowerUpJump   PowerUpKind = "jump"
	PowerUpMagnet PowerUpKind = "magnet"
)

var PowerUpKinds = []PowerUpKind{PowerUpSpeed, PowerUpJump, PowerUpMagnet}

type PowerUp struct {
	Kind     PowerUpKind
	SpawnY   float64
	BobPhase float64
}

var PowerUpComponent = NewComponent[PowerUp]("powerup")

package component

// Effects holds the remaining seconds of each timed power-up. Zero or less
// means inactive.
type Effects struct {
	Speed  float64
	Jump   float64
	Magnet float64
}

// Activate arms the effect for duration seconds. An active effect is
// refreshed, never extended.
func (e *Effects) Activate(kind PowerUpKind, duration float64) {
	switch kind {
	case PowerUpSpeed:
		e.Speed = duration
	case PowerUpJump:
		e.Jump = duration
	case PowerUpMagnet:
		e.Magnet = duration
	}
}

func (e Effects) Remaining(kind PowerUpKind) float64 {
	switch kind {
	case PowerUpSpeed:
		return e.Speed
	case PowerUpJump:
		return e.Jump
	case PowerUpMagnet:
		return e.Magnet
	}
	return 0
}

func (e Effects) Active(kind PowerUpKind) bool {
	return e.Remaining(kind) > 0
}

var EffectsComponent = NewComponent[Effects]("effects")

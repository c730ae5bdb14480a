package component

// Obstacle knocks the player back on contact. Its collision volume is a cube
// of HalfExtent around the transform.
type Obstacle struct {
	HalfExtent float64
	// Flash is the seconds left on the hit highlight.
	Flash float64
}

var ObstacleComponent = NewComponent[Obstacle]("obstacle")

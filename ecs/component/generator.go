package component

// Generator is the world generation state: the frontier bookkeeping used to
// extend the climb and the difficulty derived from the best height.
type Generator struct {
	SpawnAhead    float64
	PruneBelow    float64
	PlatformCount int
	Difficulty    int

	LastX float64
	LastY float64
	LastZ float64
}

var GeneratorComponent = NewComponent[Generator]("generator")

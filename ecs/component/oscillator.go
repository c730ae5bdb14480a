package component

type Axis string

const (
	AxisX Axis = "x"
	AxisZ Axis = "z"
)

// Oscillator moves an entity back and forth along one horizontal axis
// within Anchor±Range. The sign of Speed is the current direction.
type Oscillator struct {
	Axis   Axis
	Range  float64
	Speed  float64
	Anchor float64
}

var OscillatorComponent = NewComponent[Oscillator]("oscillator")

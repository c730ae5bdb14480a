package component

// Input stores per-tick input state for the player.
type Input struct {
	MoveX       float64
	MoveZ       float64
	JumpPressed bool
}

func (i Input) Moving() bool {
	return i.MoveX != 0 || i.MoveZ != 0
}

var InputComponent = NewComponent[Input]("input")

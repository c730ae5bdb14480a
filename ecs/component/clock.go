package component

// Clock is the simulation time of the current tick.
type Clock struct {
	DT      float64
	Elapsed float64
	Tick    uint64
}

var ClockComponent = NewComponent[Clock]("clock")

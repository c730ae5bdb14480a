package component

// Pickup is a banana: one unit of currency plus bonus score.
type Pickup struct {
	Collected bool
}

var PickupComponent = NewComponent[Pickup]("pickup")

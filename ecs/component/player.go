package component

type AnimState string

const (
	AnimIdle AnimState = "idle"
	AnimRun  AnimState = "run"
	AnimJump AnimState = "jump"
)

// Player holds the controllable character's kinematic and run state.
type Player struct {
	VelocityY    float64
	MoveSpeed    float64
	JumpVelocity float64

	Jumping        bool
	DoubleJumpUsed bool
	Alive          bool
	// Ready is false until the character model has loaded; the simulation
	// leaves the player inert until then.
	Ready bool

	// Facing is the yaw in radians the renderer should show.
	Facing float64
	Anim   AnimState
}

var PlayerComponent = NewComponent[Player]("player")

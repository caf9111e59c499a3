package component

// PlayerMovement holds the movement tuning for a controllable body.
type PlayerMovement struct {
	MoveSpeed         float64
	AirControlSpeed   float64
	JumpForce         float64
	FallMultiplier    float64
	LowJumpMultiplier float64
	// GroundProbe is how far below the collider the ground box cast reaches.
	GroundProbe float64
	// GroundMask selects the layers that count as ground.
	GroundMask uint
}

var PlayerMovementComponent = NewComponent[PlayerMovement]()

package component

import "fmt"

// MovementState is the animation state code pushed to the animator. The
// numeric values are part of the animator contract and must not change.
type MovementState int

const (
	MovementIdle MovementState = iota
	MovementJump
	MovementFall
	MovementRun
	// MovementClimb and MovementHurt are reserved; nothing produces them yet.
	MovementClimb
	MovementHurt
	MovementCrouch
)

var movementStateNames = [...]string{
	MovementIdle:   "idle",
	MovementJump:   "jump",
	MovementFall:   "fall",
	MovementRun:    "run",
	MovementClimb:  "climb",
	MovementHurt:   "hurt",
	MovementCrouch: "crouch",
}

func (s MovementState) String() string {
	if s < 0 || int(s) >= len(movementStateNames) {
		return fmt.Sprintf("MovementState(%d)", int(s))
	}
	return movementStateNames[s]
}

// ParseMovementState maps a state name back to its code.
func ParseMovementState(name string) (MovementState, bool) {
	for i, n := range movementStateNames {
		if n == name {
			return MovementState(i), true
		}
	}
	return MovementIdle, false
}

// MovementStatus is the controller's view of the body for the current frame.
type MovementStatus struct {
	State     MovementState
	Grounded  bool
	Crouching bool
}

var MovementStatusComponent = NewComponent[MovementStatus]()

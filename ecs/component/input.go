package component

// Input stores the input snapshot the player saw this frame.
type Input struct {
	MoveX          float64
	MoveY          float64
	JumpPressed    bool
	JumpHeld       bool
	CrouchPressed  bool
	CrouchReleased bool
}

var InputComponent = NewComponent[Input]()

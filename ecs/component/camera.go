package component

// Camera follows the player. Its Transform is the world point at the
// centre of the screen.
type Camera struct {
	// Smoothness is the share of the remaining distance covered per frame.
	Smoothness float64
	// LookOffset leads the view in the facing direction, in world units.
	LookOffset float64
	LookSmooth float64

	Look    float64
	Snapped bool
}

var CameraComponent = NewComponent[Camera]()

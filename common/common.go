package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the rendered frame rate the game loop runs at.
	TPS = 60
	// FixedStep is the physics step in seconds.
	FixedStep = 0.02
	// MaxFixedSteps caps catch-up physics steps in one frame.
	MaxFixedSteps = 5

	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 48.0

	// Gravity is the default vertical gravity in units/s², y-up.
	Gravity = -9.81
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

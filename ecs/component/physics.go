package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned box centred on the Transform, in world units.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()

// PhysicsBody stores Chipmunk2D runtime data and body configuration. Body
// and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

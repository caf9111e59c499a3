package component

// CollisionLayer declares which physics layers a shape belongs to and which
// layers it collides with. Both fields are chipmunk ShapeFilter bitmasks.
type CollisionLayer struct {
	// Category is a bitmask of this entity's layers. If zero, the physics
	// system will treat it as the default layer.
	Category uint
	// Mask is a bitmask of layers this entity should collide with. If
	// zero, the physics system will treat it as all-bits set (collide with all).
	Mask uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

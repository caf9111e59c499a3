package component

import "image/color"

// Sprite is a flat-coloured quad sized by the entity's Collider. When an
// Animator is present the current clip's colour wins over Color.
type Sprite struct {
	Color      color.Color
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()

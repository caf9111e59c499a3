package system

import (
	"math"

	"github.com/milk9111/sunnyland/ecs/component"
)

// stateDeadzone keeps near-zero vertical speed and stick noise from
// flickering the animation state.
const stateDeadzone = 0.1

// ClassifyMovement picks the animation state for one frame. Rules are
// checked in priority order and the first match wins.
func ClassifyMovement(grounded, crouching bool, vy, moveX float64) component.MovementState {
	switch {
	case crouching && grounded:
		return component.MovementCrouch
	case !grounded && vy > stateDeadzone:
		return component.MovementJump
	case !grounded && vy < -stateDeadzone:
		return component.MovementFall
	case math.Abs(moveX) > stateDeadzone:
		return component.MovementRun
	default:
		return component.MovementIdle
	}
}

// ShapeGravity returns the vertical velocity after extra gravity is applied:
// falls are pulled down harder and rising bodies are cut short once jump is
// released. gravityY is the world gravity (negative, y-up).
func ShapeGravity(vy, gravityY, fallMultiplier, lowJumpMultiplier float64, jumpHeld bool, dt float64) float64 {
	switch {
	case vy < 0:
		return vy + gravityY*(fallMultiplier-1)*dt
	case vy > 0 && !jumpHeld:
		return vy + gravityY*(lowJumpMultiplier-1)*dt
	default:
		return vy
	}
}

// TryJump returns the vertical velocity after a jump attempt. The jump
// overwrites vy and only happens from the ground while standing.
func TryJump(vy float64, grounded, crouching bool, jumpForce float64) (float64, bool) {
	if !grounded || crouching {
		return vy, false
	}
	return jumpForce, true
}

// HorizontalVelocity is the horizontal speed for one physics step. There is
// no acceleration: the input fully determines it.
func HorizontalVelocity(moveX float64, grounded bool, moveSpeed, airControlSpeed float64) float64 {
	if grounded {
		return moveX * moveSpeed
	}
	return moveX * airControlSpeed
}

// FacingLeft returns the sprite facing for the given input. Exactly zero
// input keeps the previous facing.
func FacingLeft(prev bool, moveX float64) bool {
	switch {
	case moveX < 0:
		return true
	case moveX > 0:
		return false
	default:
		return prev
	}
}

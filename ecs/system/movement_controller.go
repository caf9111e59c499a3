package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
	"github.com/milk9111/sunnyland/input"
)

var (
	ErrNoPlayer         = errors.New("movement: no player entity")
	ErrNoPhysicsBody    = errors.New("movement: player has no physics body")
	ErrNoCollider       = errors.New("movement: player has no collider")
	ErrNoMovementTuning = errors.New("movement: player has no movement tuning")
)

var groundDirection = cp.Vector{X: 0, Y: -1}

// PhysicsWorld is what the movement controller needs from the physics host.
type PhysicsWorld interface {
	GroundQuery
	Gravity() cp.Vector
}

// MovementControllerSystem drives the player body from an input binding.
// Update runs every rendered frame (ground probe, jump, crouch, gravity
// shaping, animation state, facing); FixedUpdate runs every physics step
// and sets the horizontal velocity.
type MovementControllerSystem struct {
	binding *input.Binding
	physics PhysicsWorld

	player   ecs.Entity
	body     *component.PhysicsBody
	collider *component.Collider
	tuning   *component.PlayerMovement
	input    *component.Input
	status   *component.MovementStatus
	animator *component.Animator
	sprite   *component.Sprite

	// resync makes the next Update take crouch from the held level rather
	// than from edges, which were not read while inactive or frozen.
	resync bool
}

func NewMovementControllerSystem(binding *input.Binding, physics PhysicsWorld) *MovementControllerSystem {
	return &MovementControllerSystem{binding: binding, physics: physics}
}

// Init acquires the player's component handles. Animator and sprite are
// optional; everything else is required.
func (m *MovementControllerSystem) Init(w *ecs.World) error {
	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return ErrNoPlayer
	}
	m.player = player

	if m.body, ok = ecs.Get(w, player, component.PhysicsBodyComponent); !ok {
		return fmt.Errorf("init %s: %w", player, ErrNoPhysicsBody)
	}
	if m.collider, ok = ecs.Get(w, player, component.ColliderComponent); !ok {
		return fmt.Errorf("init %s: %w", player, ErrNoCollider)
	}
	if m.tuning, ok = ecs.Get(w, player, component.PlayerMovementComponent); !ok {
		return fmt.Errorf("init %s: %w", player, ErrNoMovementTuning)
	}

	if m.input, ok = ecs.Get(w, player, component.InputComponent); !ok {
		m.input = &component.Input{}
		if err := ecs.Add(w, player, component.InputComponent, m.input); err != nil {
			return fmt.Errorf("movement: add input: %w", err)
		}
	}
	if m.status, ok = ecs.Get(w, player, component.MovementStatusComponent); !ok {
		m.status = &component.MovementStatus{}
		if err := ecs.Add(w, player, component.MovementStatusComponent, m.status); err != nil {
			return fmt.Errorf("movement: add status: %w", err)
		}
	}

	m.animator, _ = ecs.Get(w, player, component.AnimatorComponent)
	m.sprite, _ = ecs.Get(w, player, component.SpriteComponent)
	return nil
}

func (m *MovementControllerSystem) Activate() {
	m.binding.Enable()
	m.resync = true
}

// Deactivate stops event delivery and drops any held crouch; a later
// Activate resumes it.
func (m *MovementControllerSystem) Deactivate() {
	m.binding.Disable()
	if m.status != nil {
		m.status.Crouching = false
	}
}

// Resync tells the controller that frames passed without an Update, as
// during a pause, so held input must be re-read.
func (m *MovementControllerSystem) Resync() {
	m.resync = true
}

// Player returns the controlled entity, valid after Init.
func (m *MovementControllerSystem) Player() ecs.Entity {
	return m.player
}

func (m *MovementControllerSystem) Update(w *ecs.World, dt float64) {
	if m.body == nil || m.body.Body == nil {
		return
	}

	snap := m.binding.Read()
	*m.input = component.Input{
		MoveX:          snap.MoveX,
		MoveY:          snap.MoveY,
		JumpPressed:    snap.JumpPressed,
		JumpHeld:       snap.JumpHeld,
		CrouchPressed:  snap.CrouchPressed,
		CrouchReleased: snap.CrouchReleased,
	}

	m.status.Grounded = m.isGrounded()

	if snap.CrouchPressed {
		m.status.Crouching = true
	}
	if snap.CrouchReleased {
		m.status.Crouching = false
	}
	if m.resync {
		if !snap.CrouchPressed && !snap.CrouchReleased {
			m.status.Crouching = snap.CrouchHeld
		}
		m.resync = false
	}

	vel := m.body.Body.Velocity()
	if snap.JumpPressed {
		vel.Y, _ = TryJump(vel.Y, m.status.Grounded, m.status.Crouching, m.tuning.JumpForce)
	}
	vel.Y = ShapeGravity(vel.Y, m.physics.Gravity().Y, m.tuning.FallMultiplier, m.tuning.LowJumpMultiplier, snap.JumpHeld, dt)
	m.body.Body.SetVelocityVector(vel)

	m.status.State = ClassifyMovement(m.status.Grounded, m.status.Crouching, vel.Y, snap.MoveX)

	if m.animator != nil {
		m.animator.SetInteger(component.StateParam, int(m.status.State))
	}
	if m.sprite != nil {
		m.sprite.FacingLeft = FacingLeft(m.sprite.FacingLeft, snap.MoveX)
	}
}

func (m *MovementControllerSystem) FixedUpdate(w *ecs.World, dt float64) {
	if m.body == nil || m.body.Body == nil {
		return
	}
	vel := m.body.Body.Velocity()
	vel.X = HorizontalVelocity(m.input.MoveX, m.status.Grounded, m.tuning.MoveSpeed, m.tuning.AirControlSpeed)
	m.body.Body.SetVelocityVector(vel)
}

// isGrounded casts the collider's world bounds straight down by the ground
// probe distance against the ground layers.
func (m *MovementControllerSystem) isGrounded() bool {
	if m.physics == nil {
		return false
	}
	center := m.body.Body.Position()
	size := cp.Vector{X: m.collider.Width, Y: m.collider.Height}
	return m.physics.BoxCast(center, size, 0, groundDirection, m.tuning.GroundProbe, m.tuning.GroundMask)
}

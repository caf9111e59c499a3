package entity

import (
	"fmt"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
	"github.com/milk9111/sunnyland/prefabs"
	"golang.org/x/image/colornames"
)

// NewPlayerAt builds the player from the player prefab with its body
// centred on (x, y).
func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}

	movement := MovementFromSpec(spec.Movement)
	gravity := spec.Body.GravityScale
	if gravity == 0 {
		gravity = 1
	}

	e := w.CreateEntity()
	fail := func(what string, err error) (ecs.Entity, error) {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("player: add %s: %w", what, err)
	}

	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return fail("tag", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{Width: spec.Collider.Width, Height: spec.Collider.Height}); err != nil {
		return fail("collider", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Mass: spec.Body.Mass, Friction: spec.Body.Friction}); err != nil {
		return fail("body", err)
	}
	if err := ecs.Add(w, e, component.GravityScaleComponent, &component.GravityScale{Scale: gravity}); err != nil {
		return fail("gravity scale", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, collisionFromSpec(spec, movement)); err != nil {
		return fail("collision layer", err)
	}
	if err := ecs.Add(w, e, component.PlayerMovementComponent, movement); err != nil {
		return fail("movement", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return fail("input", err)
	}
	if err := ecs.Add(w, e, component.MovementStatusComponent, &component.MovementStatus{}); err != nil {
		return fail("status", err)
	}
	if err := ecs.Add(w, e, component.AnimatorComponent, animatorFromSpec(spec.Animation)); err != nil {
		return fail("animator", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Color: colornames.Orange}); err != nil {
		return fail("sprite", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return fail("render layer", err)
	}

	return e, nil
}

// ApplyPlayerSpec rewrites the live player's movement tuning and
// collision layer from a reloaded prefab. The physics shape still needs
// its filter refreshed afterwards.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: spec is nil")
	}
	tuning, ok := ecs.Get(w, e, component.PlayerMovementComponent)
	if !ok {
		return fmt.Errorf("player: apply %s: no movement tuning", e)
	}
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent)
	if !ok {
		return fmt.Errorf("player: apply %s: no collision layer", e)
	}
	*tuning = *MovementFromSpec(spec.Movement)
	*layer = *collisionFromSpec(spec, tuning)
	return nil
}

// collisionFromSpec puts the player on its prefab layer, colliding with
// solids and whatever counts as ground. Scenery and other players are
// passed through.
func collisionFromSpec(spec *prefabs.PlayerSpec, movement *component.PlayerMovement) *component.CollisionLayer {
	layer := spec.Layer
	if layer == common.LayerDefault {
		layer = defaultPlayerLayer
	}
	return &component.CollisionLayer{
		Category: layer.Bits(),
		Mask:     common.SolidMask.Bits() | movement.GroundMask,
	}
}

// MovementFromSpec converts prefab tuning into the runtime component,
// filling defaults for zero fields.
func MovementFromSpec(spec prefabs.MovementSpec) *component.PlayerMovement {
	spec = spec.WithDefaults()
	return &component.PlayerMovement{
		MoveSpeed:         spec.MoveSpeed,
		AirControlSpeed:   spec.AirControlSpeed,
		JumpForce:         spec.JumpForce,
		FallMultiplier:    spec.FallMultiplier,
		LowJumpMultiplier: spec.LowJumpMultiplier,
		GroundProbe:       spec.GroundProbe,
		GroundMask:        spec.GroundLayers.Bits(),
	}
}

func animatorFromSpec(spec prefabs.AnimationSpec) *component.Animator {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
			Color:      def.Color.ColorOr(nil),
		}
	}

	anim := &component.Animator{Defs: defs}
	if _, ok := defs[component.MovementIdle.String()]; ok {
		anim.Current = component.MovementIdle.String()
		anim.Playing = true
	}
	anim.SetInteger(component.StateParam, int(component.MovementIdle))
	return anim
}

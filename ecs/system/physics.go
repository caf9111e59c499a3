package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

const (
	collisionTypeDynamic cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	physicsIterations = 20
	collisionSlop     = 0.01
)

// GroundQuery sweeps a box through the physics world and reports whether it
// touches any shape on the masked layers.
type GroundQuery interface {
	BoxCast(center, size cp.Vector, angle float64, direction cp.Vector, distance float64, mask uint) bool
}

// PhysicsSystem owns the Chipmunk space. It creates bodies for entities that
// carry a PhysicsBody, steps the space at the fixed cadence and copies body
// positions back into transforms.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// NewPhysicsSystem creates a space with the given vertical gravity (y-up, so
// normally negative).
func NewPhysicsSystem(gravityY float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = physicsIterations
	space.SetCollisionSlop(collisionSlop)
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Gravity returns the world gravity vector.
func (ps *PhysicsSystem) Gravity() cp.Vector {
	if ps == nil || ps.space == nil {
		return cp.Vector{}
	}
	return ps.space.Gravity()
}

// Init creates bodies for everything already in the world so other systems
// can grab body handles during their own Init.
func (ps *PhysicsSystem) Init(w *ecs.World) error {
	ps.syncEntities(w)
	return nil
}

func (ps *PhysicsSystem) FixedUpdate(w *ecs.World, dt float64) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}
	ps.syncEntities(w)
	ps.space.Step(dt)
	ps.syncTransforms(w)
}

// BoxCast sweeps a box of the given size from center along direction for
// distance. Rotated boxes are approximated by their axis-aligned bounds.
// Shapes already overlapping the box at the start count as hits.
func (ps *PhysicsSystem) BoxCast(center, size cp.Vector, angle float64, direction cp.Vector, distance float64, mask uint) bool {
	if ps == nil || ps.space == nil {
		return false
	}
	bb := sweptBounds(center, size, angle, direction, distance)
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}

	hit := false
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		if !shape.Sensor() {
			hit = true
		}
	}, nil)
	return hit
}

func sweptBounds(center, size cp.Vector, angle float64, direction cp.Vector, distance float64) cp.BB {
	hw, hh := size.X/2, size.Y/2
	if angle != 0 {
		c, s := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
		hw, hh = c*hw+s*hh, s*hw+c*hh
	}
	start := cp.NewBBForExtents(center, hw, hh)
	if direction.LengthSq() == 0 || distance <= 0 {
		return start
	}
	end := cp.NewBBForExtents(center.Add(direction.Normalize().Mult(distance)), hw, hh)
	return cp.BB{
		L: math.Min(start.L, end.L),
		B: math.Min(start.B, end.B),
		R: math.Max(start.R, end.R),
		T: math.Max(start.T, end.T),
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		collider, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok || collider.Width <= 0 || collider.Height <= 0 {
			return
		}
		layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)
		gravity, _ := ecs.Get(w, e, component.GravityScaleComponent)

		info := ps.createBodyInfo(transform, collider, bodyComp, layer, gravity)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(
	transform *component.Transform,
	collider *component.Collider,
	bodyComp *component.PhysicsBody,
	layer *component.CollisionLayer,
	gravity *component.GravityScale,
) *bodyInfo {
	filter := shapeFilter(layer)

	if bodyComp.Static {
		bb := cp.NewBBForExtents(cp.Vector{X: transform.X, Y: transform.Y}, collider.Width/2, collider.Height/2)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// infinite moment: platformer bodies never rotate
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	if gravity != nil && gravity.Scale != 1 {
		scale := gravity.Scale
		body.SetVelocityUpdateFunc(func(body *cp.Body, g cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, g.Mult(scale), damping, dt)
		})
	}

	shape := cp.NewBox(body, collider.Width, collider.Height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeDynamic)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// shapeFilter turns a CollisionLayer into a chipmunk filter. A nil layer
// or zero fields mean the default category colliding with everything.
func shapeFilter(layer *component.CollisionLayer) cp.ShapeFilter {
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: common.LayerDefault.Bits(), Mask: cp.ALL_CATEGORIES}
	if layer != nil {
		if layer.Category != 0 {
			filter.Categories = layer.Category
		}
		if layer.Mask != 0 {
			filter.Mask = layer.Mask
		}
	}
	return filter
}

// RefreshFilter re-applies e's CollisionLayer to its live shape. It reports
// false when e has no body in the space yet.
func (ps *PhysicsSystem) RefreshFilter(w *ecs.World, e ecs.Entity) bool {
	if ps == nil || ps.space == nil {
		return false
	}
	info := ps.entities[e]
	if info == nil || info.shape == nil {
		return false
	}
	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)
	info.shape.SetFilter(shapeFilter(layer))
	return true
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

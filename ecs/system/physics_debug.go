package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.08
)

var groundProbeColor = cp.FColor{R: 1, G: 0.85, B: 0.1, A: 0.9}

// DrawPhysicsDebug outlines every shape in the space and the player's
// ground probe, using the render system's camera.
func DrawPhysicsDebug(ps *PhysicsSystem, r *RenderSystem, w *ecs.World, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || r == nil || w == nil || screen == nil {
		return
	}

	drawer := &physicsDebugDrawer{screen: screen, toScreen: r.ToScreen}
	cp.DrawSpace(ps.space, drawer)

	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent)
	if !ok || body.Body == nil {
		return
	}
	collider, ok := ecs.Get(w, player, component.ColliderComponent)
	if !ok {
		return
	}
	tuning, ok := ecs.Get(w, player, component.PlayerMovementComponent)
	if !ok {
		return
	}

	size := cp.Vector{X: collider.Width, Y: collider.Height}
	bb := sweptBounds(body.Body.Position(), size, 0, groundDirection, tuning.GroundProbe)
	// only the part below the collider is the probe
	bb.T = body.Body.Position().Y - collider.Height/2
	drawer.drawPolygon([]cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}}, groundProbeColor)
}

// DrawPlayerStateDebug prints the controller's view of the player.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image, x, y int) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	status, ok := ecs.Get(w, player, component.MovementStatusComponent)
	if !ok {
		return
	}
	vel := cp.Vector{}
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent); ok && body.Body != nil {
		vel = body.Body.Velocity()
	}
	moveX := 0.0
	if in, ok := ecs.Get(w, player, component.InputComponent); ok {
		moveX = in.MoveX
	}

	text := fmt.Sprintf("State: %s (%d)\nGrounded: %v\nCrouching: %v\nVelocity: %.2f, %.2f\nMoveX: %.2f",
		status.State, int(status.State), status.Grounded, status.Crouching, vel.X, vel.Y, moveX)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

type physicsDebugDrawer struct {
	screen   *ebiten.Image
	toScreen func(x, y float64) (float64, float64)
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a.X, a.Y)
	x2, y2 := d.toScreen(b.X, b.Y)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(c))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

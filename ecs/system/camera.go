package system

import (
	"math"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

// CameraSystem moves the camera entity towards the player and keeps the
// view inside the level bounds.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Init(w *ecs.World) error {
	cs.camEntity, _ = ecs.First(w, component.CameraComponent)
	cs.targetEntity, _ = ecs.First(w, component.PlayerTagComponent)
	return nil
}

func (cs *CameraSystem) Update(w *ecs.World, _ float64) {
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}

	lookTarget := cam.LookOffset
	if sprite, ok := ecs.Get(w, cs.targetEntity, component.SpriteComponent); ok && sprite.FacingLeft {
		lookTarget = -cam.LookOffset
	}

	x, y := target.X, target.Y
	if !cam.Snapped {
		cam.Look = lookTarget
		cam.Snapped = true
	} else {
		cam.Look = common.Lerp(cam.Look, lookTarget, cam.LookSmooth)
		x = common.Lerp(camTransform.X, target.X+cam.Look, cam.Smoothness)
		y = common.Lerp(camTransform.Y, target.Y, cam.Smoothness)
	}

	if bounds, ok := firstBounds(w); ok {
		x, y = clampView(x, y, bounds)
	}
	camTransform.X = x
	camTransform.Y = y
}

func firstBounds(w *ecs.World) (*component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelBoundsComponent)
}

// clampView keeps a screen-sized view centred on (x, y) inside bounds. On
// an axis where the level is smaller than the screen the view is pinned to
// the level's left or bottom edge.
func clampView(x, y float64, b *component.LevelBounds) (float64, float64) {
	halfW := common.BaseWidth / 2 / common.PixelsPerUnit
	halfH := common.BaseHeight / 2 / common.PixelsPerUnit
	return clampAxisView(x, b.MinX, b.MaxX, halfW), clampAxisView(y, b.MinY, b.MaxY, halfH)
}

func clampAxisView(v, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return lo + half
	}
	return math.Max(lo+half, math.Min(hi-half, v))
}

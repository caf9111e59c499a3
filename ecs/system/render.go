package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
	"golang.org/x/image/colornames"
)

// share of the body width used for the facing marker
const facingMarkerWidth = 0.25

// RenderSystem draws every entity with a Transform, Collider and Sprite as a
// coloured box, as seen from the camera entity.
type RenderSystem struct {
	pixel            *ebiten.Image
	cameraX, cameraY float64
}

func NewRenderSystem() *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &RenderSystem{pixel: pixel}
}

// ToScreen converts a world position (y-up, units) to screen pixels.
func (r *RenderSystem) ToScreen(x, y float64) (float64, float64) {
	sx := (x-r.cameraX)*common.PixelsPerUnit + common.BaseWidth/2
	sy := common.BaseHeight/2 - (y-r.cameraY)*common.PixelsPerUnit
	return sx, sy
}

func (r *RenderSystem) lookThroughCamera(w *ecs.World) {
	cam, ok := ecs.First(w, component.CameraComponent)
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent); ok {
		r.cameraX, r.cameraY = t.X, t.Y
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	r.lookThroughCamera(w)

	var entities []ecs.Entity
	ecs.ForEach2(w, component.SpriteComponent, component.ColliderComponent, func(e ecs.Entity, _ *component.Sprite, _ *component.Collider) {
		if ecs.Has(w, e, component.TransformComponent) {
			entities = append(entities, e)
		}
	})
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		c, _ := ecs.Get(w, e, component.ColliderComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)

		fill := s.Color
		if anim, ok := ecs.Get(w, e, component.AnimatorComponent); ok {
			if def, ok := anim.Defs[anim.Current]; ok && def.Color != nil {
				fill = def.Color
			}
		}
		if fill == nil {
			fill = colornames.Magenta
		}

		left, top := r.ToScreen(t.X-c.Width/2, t.Y+c.Height/2)
		width := c.Width * common.PixelsPerUnit
		height := c.Height * common.PixelsPerUnit
		r.fillRect(screen, left, top, width, height, fill)

		if ecs.Has(w, e, component.PlayerTagComponent) {
			markerW := width * facingMarkerWidth
			markerX := left + width - markerW
			if s.FacingLeft {
				markerX = left
			}
			r.fillRect(screen, markerX, top+height*0.2, markerW, height*0.2, colornames.White)
		}
	}
}

func (r *RenderSystem) fillRect(screen *ebiten.Image, x, y, width, height float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(r.pixel, op)
}

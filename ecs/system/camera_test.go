package system

import (
	"testing"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

func TestClampAxisView(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		half, want float64
	}{
		{name: "inside", v: 20, lo: 0, hi: 40, half: 10, want: 20},
		{name: "left edge", v: 3, lo: 0, hi: 40, half: 10, want: 10},
		{name: "right edge", v: 38, lo: 0, hi: 40, half: 10, want: 30},
		{name: "narrow level", v: 5, lo: 0, hi: 12, half: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampAxisView(tt.v, tt.lo, tt.hi, tt.half); got != tt.want {
				t.Fatalf("clampAxisView = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, player, component.TransformComponent, &component.Transform{X: 50, Y: 20}))

	cam := w.CreateEntity()
	camTransform := &component.Transform{}
	mustAdd(t, ecs.Add(w, cam, component.TransformComponent, camTransform))
	mustAdd(t, ecs.Add(w, cam, component.CameraComponent, &component.Camera{Smoothness: 0.5}))

	cs := NewCameraSystem()
	if err := cs.Init(w); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cs.Update(w, frameDt)
	if camTransform.X != 50 || camTransform.Y != 20 {
		t.Fatalf("expected snap to player on first frame, got %+v", *camTransform)
	}

	target, _ := ecs.Get(w, player, component.TransformComponent)
	target.X = 60
	cs.Update(w, frameDt)
	if camTransform.X != 55 {
		t.Fatalf("expected half way to the player, got %v", camTransform.X)
	}
}

func TestCameraClampsToBounds(t *testing.T) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, player, component.TransformComponent, &component.Transform{X: 1, Y: 1}))

	cam := w.CreateEntity()
	camTransform := &component.Transform{}
	mustAdd(t, ecs.Add(w, cam, component.TransformComponent, camTransform))
	mustAdd(t, ecs.Add(w, cam, component.CameraComponent, &component.Camera{Smoothness: 1}))

	bounds := w.CreateEntity()
	mustAdd(t, ecs.Add(w, bounds, component.LevelBoundsComponent, &component.LevelBounds{MaxX: 100, MaxY: 100}))

	cs := NewCameraSystem()
	_ = cs.Init(w)
	cs.Update(w, frameDt)

	halfW := common.BaseWidth / 2 / common.PixelsPerUnit
	halfH := common.BaseHeight / 2 / common.PixelsPerUnit
	if camTransform.X != halfW || camTransform.Y != halfH {
		t.Fatalf("expected view pinned to the corner (%v, %v), got %+v", halfW, halfH, *camTransform)
	}
}

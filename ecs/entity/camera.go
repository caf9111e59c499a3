package entity

import (
	"fmt"

	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

const (
	cameraSmoothness = 0.15
	cameraLookOffset = 2.0
	cameraLookSmooth = 0.05
)

// NewCameraAt creates the camera looking at (x, y).
func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	cam := &component.Camera{
		Smoothness: cameraSmoothness,
		LookOffset: cameraLookOffset,
		LookSmooth: cameraLookSmooth,
	}
	if err := ecs.Add(w, e, component.CameraComponent, cam); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}

package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
	"golang.org/x/image/colornames"
)

const (
	defaultPlayerLayer  = common.LayerPlayer
	platformRenderLayer = 0
)

// LoadLevelToWorld creates a static platform entity for every platform in
// the level, the level bounds, the player at the level's spawn point and
// the camera looking at it.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, player *prefabs.PlayerSpec) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: level is nil")
	}
	for i, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return 0, fmt.Errorf("level %s: platform %d: %w", lvl.Name, i, err)
		}
	}

	bounds := w.CreateEntity()
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent, Bounds(lvl)); err != nil {
		return 0, fmt.Errorf("level %s: add bounds: %w", lvl.Name, err)
	}

	e, err := NewPlayerAt(w, player, lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	if _, err := NewCameraAt(w, lvl.Spawn.X, lvl.Spawn.Y); err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return e, nil
}

// Bounds is the box around every platform and the spawn point.
func Bounds(lvl *levels.Level) *component.LevelBounds {
	b := &component.LevelBounds{MinX: lvl.Spawn.X, MaxX: lvl.Spawn.X, MinY: lvl.Spawn.Y, MaxY: lvl.Spawn.Y}
	for _, p := range lvl.Platforms {
		b.MinX = math.Min(b.MinX, p.X-p.Width/2)
		b.MaxX = math.Max(b.MaxX, p.X+p.Width/2)
		b.MinY = math.Min(b.MinY, p.Y-p.Height/2)
		b.MaxY = math.Max(b.MaxY, p.Y+p.Height/2)
	}
	return b
}

// NewPlatform creates a static box on the platform's physics layer. It
// collides with everything.
func NewPlatform(w *ecs.World, p levels.Platform) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("platform: world is nil")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return 0, fmt.Errorf("platform: invalid size %vx%v", p.Width, p.Height)
	}

	e := w.CreateEntity()
	fail := func(what string, err error) (ecs.Entity, error) {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("platform: add %s: %w", what, err)
	}

	if err := ecs.Add(w, e, component.PlatformTagComponent, &component.PlatformTag{}); err != nil {
		return fail("tag", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: p.X, Y: p.Y}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{Width: p.Width, Height: p.Height}); err != nil {
		return fail("collider", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Static: true, Friction: 0.9}); err != nil {
		return fail("body", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{Category: p.PhysicsLayer().Bits()}); err != nil {
		return fail("collision layer", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Color: p.Color.ColorOr(colornames.Sienna)}); err != nil {
		return fail("sprite", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: platformRenderLayer}); err != nil {
		return fail("render layer", err)
	}

	return e, nil
}

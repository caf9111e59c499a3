package system

import (
	"testing"

	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

func newAnimatedEntity(t *testing.T) (*ecs.World, *component.Animator) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	anim := &component.Animator{
		Defs: map[string]component.AnimationDef{
			"idle":   {Name: "idle", FrameCount: 3, FPS: 30, Loop: true},
			"jump":   {Name: "jump", FrameCount: 2, FPS: 60, Loop: false},
			"crouch": {Name: "crouch", FrameCount: 2, FPS: 60, Loop: false},
		},
	}
	mustAdd(t, ecs.Add(w, e, component.AnimatorComponent, anim))
	return w, anim
}

func TestAnimationSwitchesClip(t *testing.T) {
	w, anim := newAnimatedEntity(t)
	sys := NewAnimationSystem()

	anim.SetInteger(component.StateParam, int(component.MovementIdle))
	sys.Update(w, frameDt)
	if anim.Current != "idle" || !anim.Playing {
		t.Fatalf("expected idle playing, got %q playing=%v", anim.Current, anim.Playing)
	}

	anim.Frame = 2
	anim.SetInteger(component.StateParam, int(component.MovementJump))
	sys.Update(w, frameDt)
	if anim.Current != "jump" {
		t.Fatalf("expected jump clip, got %q", anim.Current)
	}
	// the switch resets to frame 0 and the same tick advances one frame at 60 FPS
	if anim.Frame != 1 {
		t.Fatalf("expected frame 1 after switch, got %d", anim.Frame)
	}
}

func TestAnimationKeepsClipWithoutDef(t *testing.T) {
	w, anim := newAnimatedEntity(t)
	sys := NewAnimationSystem()

	anim.SetInteger(component.StateParam, int(component.MovementIdle))
	sys.Update(w, frameDt)
	anim.SetInteger(component.StateParam, int(component.MovementRun))
	sys.Update(w, frameDt)
	if anim.Current != "idle" {
		t.Fatalf("expected idle to keep playing without a run clip, got %q", anim.Current)
	}
}

func TestAnimationLoopAndHold(t *testing.T) {
	tests := []struct {
		name        string
		state       component.MovementState
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		// 30 FPS at 60 TPS is two ticks per frame
		{name: "loop advances", state: component.MovementIdle, ticks: 4, wantFrame: 2, wantPlaying: true},
		{name: "loop wraps", state: component.MovementIdle, ticks: 6, wantFrame: 0, wantPlaying: true},
		{name: "hold last", state: component.MovementCrouch, ticks: 5, wantFrame: 1, wantPlaying: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, anim := newAnimatedEntity(t)
			sys := NewAnimationSystem()
			anim.SetInteger(component.StateParam, int(tt.state))
			for i := 0; i < tt.ticks; i++ {
				sys.Update(w, frameDt)
			}
			if anim.Frame != tt.wantFrame || anim.Playing != tt.wantPlaying {
				t.Fatalf("frame=%d playing=%v, want %d/%v", anim.Frame, anim.Playing, tt.wantFrame, tt.wantPlaying)
			}
		})
	}
}

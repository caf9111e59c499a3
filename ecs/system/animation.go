package system

import (
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
)

// AnimationSystem plays the clip named after each animator's state
// parameter and advances its frames.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, _ float64) {
	ecs.ForEach(w, component.AnimatorComponent, func(e ecs.Entity, anim *component.Animator) {
		state := component.MovementState(anim.Integer(component.StateParam))
		if name := state.String(); name != anim.Current {
			if _, ok := anim.Defs[name]; ok {
				anim.Current = name
				anim.Frame = 0
				anim.FrameTimer = 0
				anim.Playing = true
			}
		}

		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and TPS
		ticksPerFrame := 1
		if def.FPS > 0 {
			ticksPerFrame = int(common.TPS / def.FPS)
		}
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer < ticksPerFrame {
			return
		}
		anim.FrameTimer = 0
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
			}
		}
	})
}

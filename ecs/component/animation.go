package component

import "image/color"

// StateParam is the animator parameter carrying the MovementState code.
const StateParam = "state"

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
	Color      color.Color
}

// Animator is driven through integer parameters, like an engine animator
// controller, and plays the clip named after the current state.
type Animator struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool

	params map[string]int
}

func (a *Animator) SetInteger(name string, value int) {
	if a.params == nil {
		a.params = make(map[string]int)
	}
	a.params[name] = value
}

func (a *Animator) Integer(name string) int {
	return a.params[name]
}

var AnimatorComponent = NewComponent[Animator]()

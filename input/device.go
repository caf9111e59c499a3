package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyMap lists the keyboard keys bound to each action. Gamepad buttons use
// the standard layout and are not configurable.
type KeyMap struct {
	Left   []ebiten.Key
	Right  []ebiten.Key
	Up     []ebiten.Key
	Down   []ebiten.Key
	Jump   []ebiten.Key
	Crouch []ebiten.Key
	Pause  []ebiten.Key

	StickDeadzone float64
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:          []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:         []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:            []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:          []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:          []ebiten.Key{ebiten.KeySpace},
		Crouch:        []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyControlLeft},
		Pause:         []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StickDeadzone: 0.2,
	}
}

// DeviceSource polls the keyboard and the first connected gamepad.
type DeviceSource struct {
	keys KeyMap
}

func NewDeviceSource(keys KeyMap) *DeviceSource {
	return &DeviceSource{keys: keys}
}

func (d *DeviceSource) Poll() Snapshot {
	var s Snapshot

	if anyPressed(d.keys.Left) {
		s.MoveX -= 1
	}
	if anyPressed(d.keys.Right) {
		s.MoveX += 1
	}
	if anyPressed(d.keys.Up) {
		s.MoveY += 1
	}
	if anyPressed(d.keys.Down) {
		s.MoveY -= 1
	}

	s.JumpPressed = anyJustPressed(d.keys.Jump)
	s.JumpHeld = anyPressed(d.keys.Jump)
	s.CrouchPressed = anyJustPressed(d.keys.Crouch)
	s.CrouchReleased = anyJustReleased(d.keys.Crouch)
	s.CrouchHeld = anyPressed(d.keys.Crouch)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > d.keys.StickDeadzone {
			s.MoveX = lx
		}
		// gamepad Y grows downwards
		if math.Abs(ly) > d.keys.StickDeadzone {
			s.MoveY = -ly
		}

		jump := ebiten.StandardGamepadButtonRightBottom
		crouch := ebiten.StandardGamepadButtonLeftBottom
		s.JumpPressed = s.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, jump)
		s.JumpHeld = s.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, jump)
		s.CrouchPressed = s.CrouchPressed || inpututil.IsStandardGamepadButtonJustPressed(id, crouch)
		s.CrouchReleased = s.CrouchReleased || inpututil.IsStandardGamepadButtonJustReleased(id, crouch)
		s.CrouchHeld = s.CrouchHeld || ebiten.IsStandardGamepadButtonPressed(id, crouch)
	}

	s.MoveX = clampAxis(s.MoveX)
	s.MoveY = clampAxis(s.MoveY)
	return s
}

// PausePressed reports whether a pause key or the gamepad start button went
// down this frame.
func (d *DeviceSource) PausePressed() bool {
	if anyJustPressed(d.keys.Pause) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// anyJustPressed reports a press edge only when no other key of the action
// was already held, so rolling between two bound keys is not a new press.
func anyJustPressed(keys []ebiten.Key) bool {
	pressed := false
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			pressed = true
		} else if ebiten.IsKeyPressed(k) {
			return false
		}
	}
	return pressed
}

// anyJustReleased reports a release edge once the last held key of the
// action goes up.
func anyJustReleased(keys []ebiten.Key) bool {
	released := false
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return false
		}
		if inpututil.IsKeyJustReleased(k) {
			released = true
		}
	}
	return released
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

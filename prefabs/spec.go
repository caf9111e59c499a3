package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/input"
	"gopkg.in/yaml.v3"
)

// PlayerFile is the prefab holding the player tuning.
const PlayerFile = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Movement    MovementSpec    `yaml:"movement"`
	Collider    ColliderSpec    `yaml:"collider"`
	Body        BodySpec        `yaml:"body"`
	Layer       common.Layer    `yaml:"layer"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Input       InputSpec       `yaml:"input"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	spec.Movement = spec.Movement.WithDefaults()
	return &spec, nil
}

// MovementSpec is the player's movement tuning. Zero fields fall back to
// the defaults below.
type MovementSpec struct {
	MoveSpeed         float64          `yaml:"move_speed"`
	AirControlSpeed   float64          `yaml:"air_control_speed"`
	JumpForce         float64          `yaml:"jump_force"`
	FallMultiplier    float64          `yaml:"fall_multiplier"`
	LowJumpMultiplier float64          `yaml:"low_jump_multiplier"`
	GroundProbe       float64          `yaml:"ground_probe"`
	GroundLayers      common.LayerMask `yaml:"ground_layers"`
}

func DefaultMovementSpec() MovementSpec {
	return MovementSpec{
		MoveSpeed:         5,
		AirControlSpeed:   3,
		JumpForce:         7,
		FallMultiplier:    2.5,
		LowJumpMultiplier: 2,
		GroundProbe:       0.1,
		GroundLayers:      common.MaskOf(common.LayerGround),
	}
}

func (m MovementSpec) WithDefaults() MovementSpec {
	d := DefaultMovementSpec()
	if m.MoveSpeed == 0 {
		m.MoveSpeed = d.MoveSpeed
	}
	if m.AirControlSpeed == 0 {
		m.AirControlSpeed = d.AirControlSpeed
	}
	if m.JumpForce == 0 {
		m.JumpForce = d.JumpForce
	}
	if m.FallMultiplier == 0 {
		m.FallMultiplier = d.FallMultiplier
	}
	if m.LowJumpMultiplier == 0 {
		m.LowJumpMultiplier = d.LowJumpMultiplier
	}
	if m.GroundProbe == 0 {
		m.GroundProbe = d.GroundProbe
	}
	if m.GroundLayers == 0 {
		m.GroundLayers = d.GroundLayers
	}
	return m
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BodySpec struct {
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	GravityScale float64 `yaml:"gravity_scale"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AnimationSpec struct {
	Defs map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int        `yaml:"frame_count"`
	FPS        float64    `yaml:"fps"`
	Loop       bool       `yaml:"loop"`
	Color      *YAMLColor `yaml:"color"`
}

// InputSpec rebinds keyboard actions by ebiten key name. Empty lists keep
// the default binding.
type InputSpec struct {
	Left          []ebiten.Key `yaml:"left"`
	Right         []ebiten.Key `yaml:"right"`
	Up            []ebiten.Key `yaml:"up"`
	Down          []ebiten.Key `yaml:"down"`
	Jump          []ebiten.Key `yaml:"jump"`
	Crouch        []ebiten.Key `yaml:"crouch"`
	Pause         []ebiten.Key `yaml:"pause"`
	StickDeadzone float64      `yaml:"stick_deadzone"`
}

func (s InputSpec) KeyMap() input.KeyMap {
	km := input.DefaultKeyMap()
	override := func(dst *[]ebiten.Key, src []ebiten.Key) {
		if len(src) > 0 {
			*dst = src
		}
	}
	override(&km.Left, s.Left)
	override(&km.Right, s.Right)
	override(&km.Up, s.Up)
	override(&km.Down, s.Down)
	override(&km.Jump, s.Jump)
	override(&km.Crouch, s.Crouch)
	override(&km.Pause, s.Pause)
	if s.StickDeadzone > 0 {
		km.StickDeadzone = s.StickDeadzone
	}
	return km
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed colour, or fallback when none was given.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

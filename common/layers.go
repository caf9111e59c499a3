package common

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layer is a physics layer index. Its bit in a mask is 1<<Layer.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerGround
	LayerPlayer
	LayerWall
)

// SolidMask is every layer a body stands on or bumps into.
var SolidMask = MaskOf(LayerGround, LayerWall)

var layerNames = map[string]Layer{
	"default": LayerDefault,
	"ground":  LayerGround,
	"player":  LayerPlayer,
	"wall":    LayerWall,
}

func (l Layer) Bits() uint {
	return 1 << uint(l)
}

func (l Layer) String() string {
	for name, v := range layerNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("layer%d", uint8(l))
}

func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

func (l *Layer) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("layer must be a string")
	}
	parsed, err := ParseLayer(value.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// LayerMask is a set of layers. In YAML it is either a single layer name or
// a list of names.
type LayerMask uint

func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= LayerMask(l.Bits())
	}
	return m
}

func (m LayerMask) Bits() uint {
	return uint(m)
}

func (m LayerMask) Has(l Layer) bool {
	return uint(m)&l.Bits() != 0
}

func (m *LayerMask) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	switch value.Kind {
	case yaml.ScalarNode:
		names = []string{value.Value}
	case yaml.SequenceNode:
		if err := value.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("layer mask must be a name or a list of names")
	}

	var mask LayerMask
	for _, name := range names {
		l, err := ParseLayer(name)
		if err != nil {
			return err
		}
		mask |= LayerMask(l.Bits())
	}
	*m = mask
	return nil
}

package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/prefabs"
	"gopkg.in/yaml.v3"
)

// Default is the scene loaded when no -level flag is given.
const Default = "sunnyland"

//go:embed *.yaml
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

type Level struct {
	Name       string             `yaml:"name"`
	Gravity    float64            `yaml:"gravity"`
	Spawn      Point              `yaml:"spawn"`
	Background *prefabs.YAMLColor `yaml:"background"`
	Platforms  []Platform         `yaml:"platforms"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Platform is a static box centred on (X, Y), in world units.
type Platform struct {
	X      float64            `yaml:"x"`
	Y      float64            `yaml:"y"`
	Width  float64            `yaml:"width"`
	Height float64            `yaml:"height"`
	Layer  *common.Layer      `yaml:"layer"`
	Color  *prefabs.YAMLColor `yaml:"color"`
}

// Load reads <name>.yaml from the embedded levels. A zero gravity falls
// back to common.Gravity.
func Load(name string) (*Level, error) {
	file := name
	if !strings.HasSuffix(file, ".yaml") {
		file += ".yaml"
	}
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w (have %s)", name, ErrUnknownLevel, strings.Join(Names(), ", "))
		}
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".yaml")
	}
	if lvl.Gravity == 0 {
		lvl.Gravity = common.Gravity
	}
	return &lvl, nil
}

// PhysicsLayer returns the platform's layer, ground when none is set.
func (p Platform) PhysicsLayer() common.Layer {
	if p.Layer == nil {
		return common.LayerGround
	}
	return *p.Layer
}

// Names lists the embedded levels, sorted.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

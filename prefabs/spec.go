package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/rollgrid/roll"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// SceneSpec describes everything drawn around the rolling grid.
type SceneSpec struct {
	Name         string           `yaml:"name"`
	Renderer     RendererSpec     `yaml:"renderer"`
	Camera       CameraSpec       `yaml:"camera"`
	PointLight   PointLightSpec   `yaml:"point_light"`
	AmbientLight AmbientLightSpec `yaml:"ambient_light"`
	Material     MaterialSpec     `yaml:"material"`
	Animation    AnimationSpec    `yaml:"animation"`
}

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

// LoadSceneSpec loads the default scene prefab.
func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](DefaultScene)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadSceneFile loads a scene from an explicit path outside the prefab lookup.
func LoadSceneFile(path string) (*SceneSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return &spec, nil
}

type RendererSpec struct {
	ClearColor *YAMLColor `yaml:"clear_color"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
}

type CameraSpec struct {
	FovY     float64   `yaml:"fovy"`
	Near     float64   `yaml:"near"`
	Far      float64   `yaml:"far"`
	Position Vec3Spec  `yaml:"position"`
	LookAt   Vec3Spec  `yaml:"look_at"`
	Orbit    OrbitSpec `yaml:"orbit"`
}

type OrbitSpec struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float64 `yaml:"damping_factor"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
	ZoomSpeed     float64 `yaml:"zoom_speed"`
	PanSpeed      float64 `yaml:"pan_speed"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
}

type PointLightSpec struct {
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Decay     float64    `yaml:"decay"`
	Position  Vec3Spec   `yaml:"position"`
}

type AmbientLightSpec struct {
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
}

type MaterialSpec struct {
	Color     *YAMLColor `yaml:"color"`
	Specular  *YAMLColor `yaml:"specular"`
	Shininess float64    `yaml:"shininess"`
}

type AnimationSpec struct {
	BoxSize  float64 `yaml:"box_size"`
	Speed    float64 `yaml:"speed"`
	BoxCount int     `yaml:"box_count"`
}

// Params converts the animation block, falling back to the defaults for
// any field left out.
func (a AnimationSpec) Params() roll.Params {
	p := roll.DefaultParams()
	if a.BoxSize != 0 {
		p.BoxSize = a.BoxSize
	}
	if a.Speed != 0 {
		p.Speed = a.Speed
	}
	if a.BoxCount != 0 {
		p.BoxCount = a.BoxCount
	}
	return p
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when the field was omitted.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	s = strings.TrimPrefix(s, "0x")

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

package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

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

// PlayerSpec holds the movement tuning of the player. Zero fields fall back
// to the engine defaults.
type PlayerSpec struct {
	Name              string                      `yaml:"name"`
	AccelerationX     float64                     `yaml:"acceleration_x"`
	Gravity           float64                     `yaml:"gravity"`
	Friction          float64                     `yaml:"friction"`
	MaxSpeedWalking   float64                     `yaml:"max_speed_walking"`
	MaxSpeedRunning   float64                     `yaml:"max_speed_running"`
	RunAnimMargin     float64                     `yaml:"run_anim_margin"`
	TurnAssistDivisor float64                     `yaml:"turn_assist_divisor"`
	JumpSpeed         float64                     `yaml:"jump_speed"`
	JumpCutSpeed      float64                     `yaml:"jump_cut_speed"`
	RiseGravityScale  float64                     `yaml:"rise_gravity_scale"`
	FallGravityScale  float64                     `yaml:"fall_gravity_scale"`
	DashSpeed         float64                     `yaml:"dash_speed"`
	DashFriction      float64                     `yaml:"dash_friction"`
	LandingProbe      float64                     `yaml:"landing_probe"`
	Collider          ColliderSpec                `yaml:"collider"`
	Animation         map[string]AnimationDefSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// TilesetSpec classifies the tile-type ids of one tileset.
type TilesetSpec struct {
	Name      string                `yaml:"name"`
	Solid     []int                 `yaml:"solid"`
	Dangerous []int                 `yaml:"dangerous"`
	Leaves    []int                 `yaml:"leaves"`
	Branches  []int                 `yaml:"branches"`
	Insets    map[string]InsetSpec  `yaml:"insets"`
	Colors    map[string]*YAMLColor `yaml:"colors"`
}

func LoadTilesetSpec(name string) (*TilesetSpec, error) {
	spec, err := LoadSpec[TilesetSpec](fmt.Sprintf("tileset_%s.yaml", name))
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type InsetSpec struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// EntitySpec describes a point entity placed by a level file.
type EntitySpec struct {
	Name        string       `yaml:"name"`
	Code        int          `yaml:"code"`
	Collider    ColliderSpec `yaml:"collider"`
	Script      string       `yaml:"script"`
	Color       *YAMLColor   `yaml:"color"`
	BobInterval float64      `yaml:"bob_interval"`
}

type EntitiesSpec struct {
	Entities []EntitySpec `yaml:"entities"`
}

func LoadEntitiesSpec() (*EntitiesSpec, error) {
	spec, err := LoadSpec[EntitiesSpec]("entities.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FrameTime  float64 `yaml:"frame_time"`
	Loop       bool    `yaml:"loop"`
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

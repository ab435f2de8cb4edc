// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed schema.json
var schemaJSON string

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Boid       BoidConfig       `yaml:"boid"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Population PopulationConfig `yaml:"population"`
	Input      InputConfig      `yaml:"input"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
// World can be larger than the screen; camera handles the viewport.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// BoidConfig holds steering and movement parameters for agents.
type BoidConfig struct {
	Size            float64 `yaml:"size"`             // body radius in world units
	Speed           float64 `yaml:"speed"`            // maximum velocity magnitude
	SteeringForce   float64 `yaml:"steering_force"`   // gain applied to accumulated steering
	SlowingRadius   float64 `yaml:"slowing_radius"`   // arrival radius for seek/flee
	WanderAngle     float64 `yaml:"wander_angle"`     // max per-tick perturbation (radians)
	AvoidanceFactor float64 `yaml:"avoidance_factor"` // initial inter-agent repulsion gain
	MaxAvoidance    float64 `yaml:"max_avoidance"`    // upper clamp for the repulsion gain
	WheelGain       float64 `yaml:"wheel_gain"`       // avoidance gain change per wheel notch
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Speed        float64 `yaml:"speed"`
	Size         float64 `yaml:"size"`          // half-extent of the bullet quad
	OffsetFactor float64 `yaml:"offset_factor"` // spawn offset as multiple of boid size
}

// PopulationConfig holds population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// InputConfig holds input mapping tunables.
type InputConfig struct {
	PanSpeed float64 `yaml:"pan_speed"`
	ZoomStep float64 `yaml:"zoom_step"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in seconds
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	DT32         float32
	ScreenW32    float32
	ScreenH32    float32
	WorldW32     float32
	WorldH32     float32
	BulletOffset float32 // spawn offset in world units (size * offset_factor)
	WanderRadius float32 // wander displacement length (speed / 4)
}

var global *Config

// Init loads the global configuration. Pass an empty path to use embedded defaults.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The merged document is
// validated against the embedded JSON schema before derived values are computed.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate checks the merged configuration against the embedded JSON schema.
func (c *Config) validate() error {
	sch, err := jsonschema.CompileString("config/schema.json", schemaJSON)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	// Round-trip through YAML and JSON so the schema sees plain maps and numbers.
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config for validation: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("deserializing config for validation: %w", err)
	}
	jsonRaw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing config for validation: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(jsonRaw, &v); err != nil {
		return fmt.Errorf("deserializing config for validation: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)

	c.Derived.BulletOffset = float32(c.Boid.Size * c.Bullet.OffsetFactor)
	c.Derived.WanderRadius = float32(c.Boid.Speed / 4)
}

// WriteYAML saves the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

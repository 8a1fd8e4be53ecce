package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

// SettingsSpec is the game configuration, settings.yaml.
type SettingsSpec struct {
	Title     string     `yaml:"title"`
	Window    WindowSpec `yaml:"window"`
	TPS       int        `yaml:"tps"`
	Volume    VolumeSpec `yaml:"volume"`
	LogLevel  string     `yaml:"log_level"`
	AssetDir  string     `yaml:"asset_dir"`
	HotReload bool       `yaml:"hot_reload"`
	Level     string     `yaml:"level"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type VolumeSpec struct {
	Master float64 `yaml:"master"`
	Music  float64 `yaml:"music"`
}

func LoadSettings() (*SettingsSpec, error) {
	spec, err := LoadSpec[SettingsSpec]("settings.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *SettingsSpec) applyDefaults() {
	if s.Title == "" {
		s.Title = "orbital"
	}
	if s.Window.Width <= 0 {
		s.Window.Width = 1280
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 720
	}
	if s.TPS <= 0 {
		s.TPS = 60
	}
	if s.AssetDir == "" {
		s.AssetDir = "assets"
	}
	if s.Level == "" {
		s.Level = "level.yaml"
	}
}

// LevelSpec describes a gameplay scene: its music and the prefabs it spawns.
type LevelSpec struct {
	Name       string   `yaml:"name"`
	Music      []string `yaml:"music"`
	Planet     string   `yaml:"planet"`
	Asteroids  string   `yaml:"asteroids"`
	BeltScript string   `yaml:"belt_script"`
}

func (s LevelSpec) Validate() error {
	if len(s.Music) == 0 {
		return fmt.Errorf("%w: level %q has no music", ErrInvalidSpec, s.Name)
	}
	return nil
}

type AtlasSpec struct {
	TileW   int `yaml:"tile_w"`
	TileH   int `yaml:"tile_h"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// AnimationClockSpec configures a fixed-rate frame cycle for one asset class.
type AnimationClockSpec struct {
	Frames int `yaml:"frames"`
	TickMS int `yaml:"tick_ms"`
}

func (s AnimationClockSpec) Tick() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}

type PlanetSpec struct {
	Name      string             `yaml:"name"`
	Sheet     string             `yaml:"sheet"`
	Atlas     AtlasSpec          `yaml:"atlas"`
	Scale     float64            `yaml:"scale"`
	Animation AnimationClockSpec `yaml:"animation"`
}

// TextureRange is a contiguous run of atlas tiles.
type TextureRange struct {
	First int `yaml:"first"`
	Count int `yaml:"count"`
}

type AsteroidSizeSpec struct {
	MinScale float64      `yaml:"min_scale"`
	MaxScale float64      `yaml:"max_scale"`
	Textures TextureRange `yaml:"textures"`
}

type AsteroidSpec struct {
	Sheet string                      `yaml:"sheet"`
	Atlas AtlasSpec                   `yaml:"atlas"`
	Sizes map[string]AsteroidSizeSpec `yaml:"sizes"`
}

// Size returns the spec for a size name such as "dust".
func (s AsteroidSpec) Size(name string) (AsteroidSizeSpec, error) {
	spec, ok := s.Sizes[name]
	if !ok {
		return AsteroidSizeSpec{}, fmt.Errorf("%w: no asteroid size %q", ErrInvalidSpec, name)
	}
	if spec.Textures.Count <= 0 || spec.MaxScale < spec.MinScale {
		return AsteroidSizeSpec{}, fmt.Errorf("%w: asteroid size %q", ErrInvalidSpec, name)
	}
	return spec, nil
}

package prefabs

import "gopkg.in/yaml.v3"

// DecodeComponentSpec re-decodes a loosely typed value (from YAML or a script)
// into T through its YAML tags.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// BeltBand is one ring of asteroids produced by a belt script.
type BeltBand struct {
	Size        string  `yaml:"size"`
	Count       int     `yaml:"count"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Drift       float64 `yaml:"drift"`
}

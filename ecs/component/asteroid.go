package component

import "fmt"

type AsteroidSize uint8

const (
	AsteroidDust AsteroidSize = iota
	AsteroidSmall
	AsteroidLarge
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidDust:
		return "dust"
	case AsteroidSmall:
		return "small"
	case AsteroidLarge:
		return "large"
	default:
		return fmt.Sprintf("asteroid_size(%d)", uint8(s))
	}
}

// ParseAsteroidSize maps a prefab size name to its AsteroidSize.
func ParseAsteroidSize(name string) (AsteroidSize, error) {
	switch name {
	case "dust":
		return AsteroidDust, nil
	case "small":
		return AsteroidSmall, nil
	case "large":
		return AsteroidLarge, nil
	default:
		return 0, fmt.Errorf("asteroid: unknown size %q", name)
	}
}

type Asteroid struct {
	Size AsteroidSize
}

var AsteroidComponent = NewComponent[Asteroid]()

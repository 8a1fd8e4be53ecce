package entity

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/prefabs"
)

// AsteroidParams places one asteroid on its orbit.
type AsteroidParams struct {
	Size     component.AsteroidSize
	Angle    float64
	Distance float64
	Speed    float64
	// Drift is the radius change per second; zero means no Drift component.
	Drift float64
}

// NewAsteroid spawns an orbiting asteroid with a random scale and texture drawn
// from the ranges of its size class.
func NewAsteroid(w *ecs.World, p AsteroidParams, spec prefabs.AsteroidSpec, sheet *ebiten.Image, rng *rand.Rand) (ecs.Entity, error) {
	sizeSpec, err := spec.Size(p.Size.String())
	if err != nil {
		return 0, err
	}
	orbit, err := component.NewOrbit(p.Distance, p.Angle, p.Speed)
	if err != nil {
		return 0, fmt.Errorf("asteroid at %.1f: %w", p.Distance, err)
	}

	scale := sizeSpec.MinScale + rng.Float64()*(sizeSpec.MaxScale-sizeSpec.MinScale)
	index := sizeSpec.Textures.First + rng.IntN(sizeSpec.Textures.Count)
	atlas := atlasLayout(spec.Atlas)
	x, y := orbit.Position()

	e := ecs.CreateEntity(w)
	adders := []func() error{
		func() error { return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: "asteroid"}) },
		func() error { return ecs.Add(w, e, component.AsteroidComponent.Kind(), &component.Asteroid{Size: p.Size}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: 1, ScaleX: scale, ScaleY: scale})
		},
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sheet, Atlas: &atlas, Index: index})
		},
		func() error { return ecs.Add(w, e, component.OrbitComponent.Kind(), orbit) },
		func() error { return scopeToGameplay(w, e) },
	}
	if p.Drift != 0 {
		adders = append(adders, func() error {
			return ecs.Add(w, e, component.DriftComponent.Kind(), &component.Drift{Rate: p.Drift})
		})
	}
	if err := addAll(w, e, adders...); err != nil {
		return 0, fmt.Errorf("asteroid: %w", err)
	}
	return e, nil
}

// BeltRand returns the deterministic generator used to lay out a level's belt.
func BeltRand(level string) *rand.Rand {
	seed := xxhash.Sum64String(level)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewAsteroidBelt spawns every band at random angles within its distance and
// speed ranges.
func NewAsteroidBelt(w *ecs.World, bands []prefabs.BeltBand, spec prefabs.AsteroidSpec, sheet *ebiten.Image, rng *rand.Rand) ([]ecs.Entity, error) {
	var out []ecs.Entity
	for i, band := range bands {
		size, err := component.ParseAsteroidSize(band.Size)
		if err != nil {
			return out, fmt.Errorf("belt band %d: %w", i, err)
		}
		for n := 0; n < band.Count; n++ {
			p := AsteroidParams{
				Size:     size,
				Angle:    rng.Float64() * 360,
				Distance: between(rng, band.MinDistance, band.MaxDistance),
				Speed:    between(rng, band.MinSpeed, band.MaxSpeed),
				Drift:    band.Drift,
			}
			e, err := NewAsteroid(w, p, spec, sheet, rng)
			if err != nil {
				return out, fmt.Errorf("belt band %d: %w", i, err)
			}
			out = append(out, e)
		}
	}
	return out, nil
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func sortEntities(ents []ecs.Entity) {
	sort.Slice(ents, func(i, j int) bool { return ents[i] < ents[j] })
}

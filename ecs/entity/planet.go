package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/prefabs"
)

// NewPlanet spawns the animated planet at the scene origin. sheet may be nil in
// headless use; the sprite is then skipped by the renderer.
func NewPlanet(w *ecs.World, spec prefabs.PlanetSpec, sheet *ebiten.Image) (ecs.Entity, error) {
	clock, err := component.NewAnimationClock(spec.Animation.Frames, spec.Animation.Tick())
	if err != nil {
		return 0, fmt.Errorf("planet %q: %w", spec.Name, err)
	}
	atlas := atlasLayout(spec.Atlas)
	if atlas.Len() < clock.FrameCount() {
		return 0, fmt.Errorf("planet %q: atlas has %d tiles for %d frames: %w", spec.Name, atlas.Len(), clock.FrameCount(), prefabs.ErrInvalidSpec)
	}

	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}

	e := ecs.CreateEntity(w)
	if err := addAll(w, e,
		func() error { return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}) },
		func() error { return ecs.Add(w, e, component.PlanetTagComponent.Kind(), &component.PlanetTag{}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: scale, ScaleY: scale})
		},
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sheet, Atlas: &atlas, Index: clock.AtlasIndex()})
		},
		func() error { return ecs.Add(w, e, component.AnimationClockComponent.Kind(), clock) },
		func() error { return scopeToGameplay(w, e) },
	); err != nil {
		return 0, fmt.Errorf("planet %q: %w", spec.Name, err)
	}
	return e, nil
}

func atlasLayout(spec prefabs.AtlasSpec) component.AtlasLayout {
	return component.AtlasLayout{TileW: spec.TileW, TileH: spec.TileH, Columns: spec.Columns, Rows: spec.Rows}
}

func scopeToGameplay(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.SceneScopedComponent.Kind(), &component.SceneScoped{Screen: component.ScreenGameplay})
}

// addAll runs component adders in order and destroys e on the first failure.
func addAll(w *ecs.World, e ecs.Entity, adders ...func() error) error {
	for _, add := range adders {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return err
		}
	}
	return nil
}

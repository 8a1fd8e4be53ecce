package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/prefabs"
)

// ImageLoader resolves sprite sheet paths to loaded images.
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// LevelConfig is everything needed to spawn a level, already loaded.
type LevelConfig struct {
	Name          string
	Tracks        []component.TrackHandle
	Planet        prefabs.PlanetSpec
	Asteroids     prefabs.AsteroidSpec
	Bands         []prefabs.BeltBand
	PlanetSheet   *ebiten.Image
	AsteroidSheet *ebiten.Image
}

// LoadLevelConfig reads a level prefab, the prefabs it references and its belt
// script. Images are resolved through images; pass nil to skip them.
func LoadLevelConfig(levelFile string, images ImageLoader) (LevelConfig, error) {
	level, err := prefabs.LoadSpec[prefabs.LevelSpec](levelFile)
	if err != nil {
		return LevelConfig{}, err
	}
	if err := level.Validate(); err != nil {
		return LevelConfig{}, err
	}
	planet, err := prefabs.LoadSpec[prefabs.PlanetSpec](level.Planet)
	if err != nil {
		return LevelConfig{}, err
	}
	asteroids, err := prefabs.LoadSpec[prefabs.AsteroidSpec](level.Asteroids)
	if err != nil {
		return LevelConfig{}, err
	}

	var bands []prefabs.BeltBand
	if level.BeltScript != "" {
		bands, err = prefabs.RunBeltScript(level.BeltScript, level.Name)
		if err != nil {
			return LevelConfig{}, err
		}
	}

	cfg := LevelConfig{
		Name:      level.Name,
		Tracks:    make([]component.TrackHandle, 0, len(level.Music)),
		Planet:    planet,
		Asteroids: asteroids,
		Bands:     bands,
	}
	for _, m := range level.Music {
		cfg.Tracks = append(cfg.Tracks, component.TrackHandle(m))
	}

	if images != nil {
		if cfg.PlanetSheet, err = images.LoadImage(planet.Sheet); err != nil {
			return LevelConfig{}, fmt.Errorf("level %q: planet sheet: %w", level.Name, err)
		}
		if cfg.AsteroidSheet, err = images.LoadImage(asteroids.Sheet); err != nil {
			return LevelConfig{}, fmt.Errorf("level %q: asteroid sheet: %w", level.Name, err)
		}
	}
	return cfg, nil
}

// Level holds the entities spawned by SpawnLevel.
type Level struct {
	Root      ecs.Entity
	Planet    ecs.Entity
	Playlist  ecs.Entity
	Asteroids []ecs.Entity
}

// SpawnLevel builds the gameplay scene: planet, asteroid belt and the music
// playlist. Every entity is scoped to gameplay. Music is not started here.
func SpawnLevel(w *ecs.World, cfg LevelConfig) (Level, error) {
	playlist, err := component.NewPlaylist(cfg.Tracks)
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", cfg.Name, err)
	}

	var lvl Level
	lvl.Root = ecs.CreateEntity(w)
	if err := addAll(w, lvl.Root,
		func() error { return ecs.Add(w, lvl.Root, component.NameComponent.Kind(), &component.Name{Value: "level"}) },
		func() error { return ecs.Add(w, lvl.Root, component.LevelTagComponent.Kind(), &component.LevelTag{}) },
		func() error { return scopeToGameplay(w, lvl.Root) },
	); err != nil {
		return Level{}, err
	}

	fail := func(err error) (Level, error) {
		despawnLevel(w, lvl)
		return Level{}, fmt.Errorf("level %q: %w", cfg.Name, err)
	}

	if lvl.Planet, err = NewPlanet(w, cfg.Planet, cfg.PlanetSheet); err != nil {
		return fail(err)
	}
	lvl.Asteroids, err = NewAsteroidBelt(w, cfg.Bands, cfg.Asteroids, cfg.AsteroidSheet, BeltRand(cfg.Name))
	if err != nil {
		return fail(err)
	}

	lvl.Playlist = ecs.CreateEntity(w)
	if err := addAll(w, lvl.Playlist,
		func() error {
			return ecs.Add(w, lvl.Playlist, component.NameComponent.Kind(), &component.Name{Value: "gameplay music playlist"})
		},
		func() error { return ecs.Add(w, lvl.Playlist, component.PlaylistComponent.Kind(), playlist) },
		func() error { return scopeToGameplay(w, lvl.Playlist) },
	); err != nil {
		return fail(err)
	}
	return lvl, nil
}

func despawnLevel(w *ecs.World, lvl Level) {
	ecs.DestroyEntity(w, lvl.Root)
	ecs.DestroyEntity(w, lvl.Planet)
	ecs.DestroyEntity(w, lvl.Playlist)
	for _, e := range lvl.Asteroids {
		ecs.DestroyEntity(w, e)
	}
}

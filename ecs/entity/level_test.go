package entity

import (
	"testing"

	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestLevel(t *testing.T) LevelConfig {
	t.Helper()
	cfg, err := LoadLevelConfig("level.yaml", nil)
	require.NoError(t, err)
	return cfg
}

func TestLoadLevelConfig(t *testing.T) {
	cfg := loadTestLevel(t)

	assert.Equal(t, "gameplay", cfg.Name)
	require.Len(t, cfg.Tracks, 4)
	assert.Contains(t, string(cfg.Tracks[0]), "Impact Prelude")
	assert.Equal(t, 1200, cfg.Planet.Animation.Frames)
	assert.NotEmpty(t, cfg.Bands)
	assert.Nil(t, cfg.PlanetSheet)
	assert.Nil(t, cfg.AsteroidSheet)
}

func TestSpawnLevel(t *testing.T) {
	cfg := loadTestLevel(t)
	w := ecs.NewWorld()

	lvl, err := SpawnLevel(w, cfg)
	require.NoError(t, err)

	want := 0
	for _, b := range cfg.Bands {
		want += b.Count
	}
	assert.Len(t, lvl.Asteroids, want)

	_, playlist, ok := ecs.Single(w, component.PlaylistComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cfg.Tracks, playlist.Tracks())

	assert.True(t, ecs.Has(w, lvl.Planet, component.PlanetTagComponent.Kind()))
	assert.True(t, ecs.Has(w, lvl.Planet, component.AnimationClockComponent.Kind()))
	assert.True(t, ecs.Has(w, lvl.Root, component.LevelTagComponent.Kind()))

	for _, e := range append([]ecs.Entity{lvl.Root, lvl.Planet, lvl.Playlist}, lvl.Asteroids...) {
		scoped, ok := ecs.Get(w, e, component.SceneScopedComponent.Kind())
		require.True(t, ok, "entity %v", e)
		assert.Equal(t, component.ScreenGameplay, scoped.Screen)
	}

	assert.Empty(t, PlaybackInstances(w, component.CategoryMusic), "music is started separately")
}

func TestSpawnLevelRejectsEmptyPlaylist(t *testing.T) {
	cfg := loadTestLevel(t)
	cfg.Tracks = nil
	w := ecs.NewWorld()

	_, err := SpawnLevel(w, cfg)
	assert.ErrorIs(t, err, component.ErrEmptyPlaylist)
	assert.Empty(t, ecs.Entities(w))
}

func TestSpawnLevelCleansUpOnFailure(t *testing.T) {
	cfg := loadTestLevel(t)
	cfg.Bands = append(cfg.Bands, prefabs.BeltBand{Size: "enormous", Count: 1, MinDistance: 10, MaxDistance: 20, MinSpeed: 1, MaxSpeed: 2})
	w := ecs.NewWorld()

	_, err := SpawnLevel(w, cfg)
	require.Error(t, err)
	assert.Empty(t, ecs.Entities(w))
}

func TestNewPlanetRejectsSmallAtlas(t *testing.T) {
	spec := prefabs.PlanetSpec{
		Name:      "tiny",
		Atlas:     prefabs.AtlasSpec{TileW: 10, TileH: 10, Columns: 2, Rows: 2},
		Animation: prefabs.AnimationClockSpec{Frames: 5, TickMS: 40},
	}
	w := ecs.NewWorld()

	_, err := NewPlanet(w, spec, nil)
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
	assert.Empty(t, ecs.Entities(w))
}

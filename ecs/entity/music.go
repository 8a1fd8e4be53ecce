package entity

import (
	"github.com/google/uuid"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
)

// NewMusic spawns a music playback instance scoped to gameplay. It is destroyed
// when the track ends, which the audio system reports back to the playlist.
func NewMusic(w *ecs.World, track component.TrackHandle, volume float64) ecs.Entity {
	e := newPlayback(w, track, component.CategoryMusic, volume)
	_ = ecs.Add(w, e, component.SceneScopedComponent.Kind(), &component.SceneScoped{Screen: component.ScreenGameplay})
	return e
}

// NewSoundEffect spawns a one-shot sound that despawns when done.
func NewSoundEffect(w *ecs.World, track component.TrackHandle, volume float64) ecs.Entity {
	return newPlayback(w, track, component.CategorySoundEffect, volume)
}

func newPlayback(w *ecs.World, track component.TrackHandle, category component.AudioCategory, volume float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlaybackInstanceComponent.Kind(), &component.PlaybackInstance{
		ID:       uuid.New(),
		Track:    track,
		Category: category,
		Volume:   volume,
		Despawn:  true,
	})
	return e
}

// PlaybackInstances returns the live instances of category, in entity order.
func PlaybackInstances(w *ecs.World, category component.AudioCategory) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.PlaybackInstanceComponent.Kind(), func(e ecs.Entity, inst *component.PlaybackInstance) {
		if inst.Category == category {
			out = append(out, e)
		}
	})
	sortEntities(out)
	return out
}

package system

import (
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
)

// CurrentScreen returns the screen held by the GameState singleton, or
// ScreenTitle when there is none.
func CurrentScreen(w *ecs.World) component.Screen {
	if _, state, ok := ecs.Single(w, component.GameStateComponent.Kind()); ok {
		return state.Screen
	}
	return component.ScreenTitle
}

// SetScreen switches the current screen. Entities scoped to the screen being
// left are destroyed immediately; sounds among them are reported finished by
// the audio system on its next update, by which time the new screen is current.
// It returns the number of entities destroyed.
func SetScreen(w *ecs.World, screen component.Screen) int {
	if w == nil {
		return 0
	}
	_, state, ok := ecs.Single(w, component.GameStateComponent.Kind())
	if !ok {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{Screen: screen})
		return 0
	}
	prev := state.Screen
	if prev == screen {
		return 0
	}
	state.Screen = screen

	var doomed []ecs.Entity
	ecs.ForEach(w, component.SceneScopedComponent.Kind(), func(e ecs.Entity, scoped *component.SceneScoped) {
		if scoped.Screen == prev {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
	return len(doomed)
}

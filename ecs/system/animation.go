package system

import (
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
)

// AnimationTimerSystem advances every animation clock by the step delta.
type AnimationTimerSystem struct{}

func NewAnimationTimerSystem() *AnimationTimerSystem {
	return &AnimationTimerSystem{}
}

func (a *AnimationTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta
	ecs.ForEach(w, component.AnimationClockComponent.Kind(), func(_ ecs.Entity, clock *component.AnimationClock) {
		clock.Tick(dt)
	})
}

// AnimationAtlasSystem copies the clock frame into the sprite atlas index, only
// on steps where the clock moved.
type AnimationAtlasSystem struct{}

func NewAnimationAtlasSystem() *AnimationAtlasSystem {
	return &AnimationAtlasSystem{}
}

func (a *AnimationAtlasSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationClockComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, clock *component.AnimationClock, sprite *component.Sprite) {
		if sprite.Atlas == nil || !clock.Changed() {
			return
		}
		sprite.Index = clock.AtlasIndex()
	})
}

package component

import (
	"errors"
	"time"
)

var ErrInvalidAnimation = errors.New("animation: frame count and tick must be positive")

// AnimationClock cycles a sprite through a fixed number of atlas frames at a
// fixed rate. It never stops; it lives as long as its entity.
type AnimationClock struct {
	frameCount int
	tick       time.Duration
	elapsed    time.Duration
	frame      int
	changed    bool
}

var AnimationClockComponent = NewComponent[AnimationClock]()

func NewAnimationClock(frameCount int, tick time.Duration) (*AnimationClock, error) {
	if frameCount <= 0 || tick <= 0 {
		return nil, ErrInvalidAnimation
	}
	return &AnimationClock{frameCount: frameCount, tick: tick}, nil
}

// Tick accumulates dt. Every full tick duration advances the frame by one,
// wrapping at the frame count. Changed is true until the next Tick only if at
// least one frame boundary was crossed.
func (a *AnimationClock) Tick(dt time.Duration) {
	a.changed = false
	if dt <= 0 {
		return
	}
	a.elapsed += dt
	steps := int(a.elapsed / a.tick)
	if steps == 0 {
		return
	}
	a.elapsed -= time.Duration(steps) * a.tick
	a.frame = (a.frame + steps) % a.frameCount
	a.changed = true
}

// Changed reports whether the last Tick moved the frame.
func (a *AnimationClock) Changed() bool {
	return a.changed
}

// AtlasIndex is the sprite sheet index of the current frame.
func (a *AnimationClock) AtlasIndex() int {
	return a.frame
}

func (a *AnimationClock) FrameCount() int {
	return a.frameCount
}

func (a *AnimationClock) TickDuration() time.Duration {
	return a.tick
}

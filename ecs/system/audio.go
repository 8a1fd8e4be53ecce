package system

import (
	"sort"

	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/logging"
	"go.uber.org/zap"
)

// Sink is a playing sound. *audio.Player satisfies it.
type Sink interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// SinkFunc opens a new sink for a loaded track.
type SinkFunc func(track component.TrackHandle) (Sink, error)

type activeSound struct {
	sink     Sink
	instance component.PlaybackInstance
	finished bool
}

// AudioSystem binds PlaybackInstance entities to sinks. It starts sinks for new
// instances, applies global volume changes to running sinks and, when a sound
// ends or its entity is destroyed, closes the sink and reports music teardown
// to the playlist as a track-finished event.
type AudioSystem struct {
	open    SinkFunc
	log     *zap.Logger
	active  map[ecs.Entity]*activeSound
	applied float64
}

func NewAudioSystem(open SinkFunc, log *zap.Logger) *AudioSystem {
	return &AudioSystem{
		open:    open,
		log:     logging.OrNop(log),
		active:  make(map[ecs.Entity]*activeSound),
		applied: -1,
	}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	global := 1.0
	if _, gv, ok := ecs.Single(w, component.GlobalVolumeComponent.Kind()); ok {
		global = gv.Volume
	}
	volumeChanged := global != a.applied
	a.applied = global

	ecs.ForEach(w, component.PlaybackInstanceComponent.Kind(), func(e ecs.Entity, inst *component.PlaybackInstance) {
		if sound, ok := a.active[e]; ok {
			if volumeChanged && !sound.finished {
				sound.sink.SetVolume(global * sound.instance.Volume)
			}
			return
		}
		a.start(w, e, *inst, global)
	})

	a.reap(w)
}

func (a *AudioSystem) start(w *ecs.World, e ecs.Entity, inst component.PlaybackInstance, global float64) {
	if a.open == nil {
		return
	}
	sink, err := a.open(inst.Track)
	if err != nil || sink == nil {
		// Not reported as finished: a missing track would otherwise respawn every step.
		a.log.Error("audio: open sink",
			zap.String("track", string(inst.Track)),
			zap.Stringer("category", inst.Category),
			zap.Error(err))
		ecs.DestroyEntity(w, e)
		return
	}
	sink.SetVolume(global * inst.Volume)
	sink.Play()
	a.active[e] = &activeSound{sink: sink, instance: inst}
	a.log.Debug("audio: playing",
		zap.String("track", string(inst.Track)),
		zap.Stringer("instance", inst.ID),
		zap.Stringer("category", inst.Category))
}

// reap retires sounds whose entity is gone or whose sink stopped. Entities are
// visited in id order so finished events are deterministic.
func (a *AudioSystem) reap(w *ecs.World) {
	if len(a.active) == 0 {
		return
	}
	ents := make([]ecs.Entity, 0, len(a.active))
	for e := range a.active {
		ents = append(ents, e)
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i] < ents[j] })

	for _, e := range ents {
		sound := a.active[e]
		alive := ecs.Has(w, e, component.PlaybackInstanceComponent.Kind())
		if alive {
			if sound.finished || sound.sink.IsPlaying() {
				continue
			}
			if !sound.instance.Despawn {
				sound.finished = true
				continue
			}
			ecs.DestroyEntity(w, e)
		}
		a.retire(w, e, sound)
	}
}

func (a *AudioSystem) retire(w *ecs.World, e ecs.Entity, sound *activeSound) {
	delete(a.active, e)
	sound.sink.Pause()
	if err := sound.sink.Close(); err != nil {
		a.log.Warn("audio: close sink", zap.String("track", string(sound.instance.Track)), zap.Error(err))
	}
	if sound.instance.Category == component.CategoryMusic {
		TrackFinished(w, sound.instance)
	}
}

// Active returns the live instances of category, in entity order.
func (a *AudioSystem) Active(category component.AudioCategory) []component.PlaybackInstance {
	if a == nil {
		return nil
	}
	ents := make([]ecs.Entity, 0, len(a.active))
	for e, sound := range a.active {
		if sound.instance.Category == category && !sound.finished {
			ents = append(ents, e)
		}
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i] < ents[j] })
	out := make([]component.PlaybackInstance, 0, len(ents))
	for _, e := range ents {
		out = append(out, a.active[e].instance)
	}
	return out
}

// Close stops and releases every sink without raising events.
func (a *AudioSystem) Close() {
	if a == nil {
		return
	}
	for e, sound := range a.active {
		sound.sink.Pause()
		_ = sound.sink.Close()
		delete(a.active, e)
	}
}

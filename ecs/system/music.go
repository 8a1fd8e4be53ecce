package system

import (
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/ecs/entity"
	"github.com/milk9111/orbital/logging"
	"go.uber.org/zap"
)

const defaultMusicVolume = 1.0

// StartMusic queues a playlist restart for the active scene.
func StartMusic(w *ecs.World) {
	w.Events().Push(ecs.Event{Type: component.EventStartMusic})
}

// NextSong queues an advance of the active playlist.
func NextSong(w *ecs.World) {
	w.Events().Push(ecs.Event{Type: component.EventNextSong})
}

// TrackFinished queues the notification that a music instance was torn down.
func TrackFinished(w *ecs.World, inst component.PlaybackInstance) {
	w.Events().Push(ecs.Event{Type: component.EventTrackFinished, Data: inst})
}

// SceneContext is the view of the active scene handed to playlist handling.
// Playlist is nil when no level has been spawned yet.
type SceneContext struct {
	World    *ecs.World
	Playlist *component.Playlist
	Active   bool
}

// ResolveScene looks up the active playlist and whether gameplay is current.
func ResolveScene(w *ecs.World) SceneContext {
	ctx := SceneContext{World: w, Active: CurrentScreen(w) == component.ScreenGameplay}
	if _, playlist, ok := ecs.Single(w, component.PlaylistComponent.Kind()); ok {
		ctx.Playlist = playlist
	}
	return ctx
}

// PlaylistSystem drains playlist commands once per step, in the order they
// were queued, and spawns music instances for the resolved track.
type PlaylistSystem struct {
	log    *zap.Logger
	volume float64
}

func NewPlaylistSystem(log *zap.Logger, volume float64) *PlaylistSystem {
	if volume <= 0 {
		volume = defaultMusicVolume
	}
	if volume > 1 {
		volume = 1
	}
	return &PlaylistSystem{log: logging.OrNop(log), volume: volume}
}

func (p *PlaylistSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	events := w.Events().DrainTypes(component.EventStartMusic, component.EventNextSong, component.EventTrackFinished)
	for _, evt := range events {
		p.Handle(ResolveScene(w), evt)
	}
}

// Handle runs one playlist command to completion. It returns the spawned music
// entity, if any.
func (p *PlaylistSystem) Handle(ctx SceneContext, evt ecs.Event) (ecs.Entity, bool) {
	switch evt.Type {
	case component.EventStartMusic:
		if ctx.Playlist == nil {
			p.log.Debug("playlist: start ignored, no playlist")
			return 0, false
		}
		ctx.Playlist.Start()
		p.log.Info("starting music")
		return p.advance(ctx)
	case component.EventNextSong:
		return p.advance(ctx)
	case component.EventTrackFinished:
		if !ctx.Active {
			p.log.Debug("playlist: track finished outside gameplay")
			return 0, false
		}
		return p.advance(ctx)
	}
	return 0, false
}

// advance resolves the current track and spawns a playback instance for it.
// The index is validated, not incremented; see Playlist.Resolve.
func (p *PlaylistSystem) advance(ctx SceneContext) (ecs.Entity, bool) {
	if ctx.Playlist == nil || ctx.World == nil {
		p.log.Debug("playlist: advance ignored, no playlist")
		return 0, false
	}
	track := ctx.Playlist.Resolve()
	e := entity.NewMusic(ctx.World, track, p.volume)
	p.log.Info("next song", zap.String("track", string(track)), zap.Int("index", ctx.Playlist.Index()))
	return e, true
}

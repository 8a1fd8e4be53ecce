package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/orbital/assets"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/ecs/entity"
	"github.com/milk9111/orbital/ecs/system"
	"github.com/milk9111/orbital/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	settings *prefabs.SettingsSpec
	lib      *assets.Library
	log      *zap.Logger
	debug    bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	audio     *system.AudioSystem
	render    *system.RenderSystem
	watcher   *prefabs.Watcher

	dt            time.Duration
	pendingReload bool
}

func NewGame(settings *prefabs.SettingsSpec, lib *assets.Library, log *zap.Logger, debug bool) (*Game, error) {
	g := &Game{
		settings: settings,
		lib:      lib,
		log:      log,
		debug:    debug,
		world:    ecs.NewWorld(),
		render:   system.NewRenderSystem(),
		dt:       time.Second / time.Duration(settings.TPS),
	}

	g.audio = system.NewAudioSystem(func(track component.TrackHandle) (system.Sink, error) {
		p, err := lib.NewPlayer(track)
		if err != nil {
			return nil, err
		}
		return p, nil
	}, log)

	g.scheduler = ecs.NewScheduler(
		system.NewDriftSystem(),
		system.NewOrbitSystem(log),
		system.NewAnimationTimerSystem(),
		system.NewAnimationAtlasSystem(),
		g.audio,
		system.NewPlaylistSystem(log, settings.Volume.Music),
	)

	volume := ecs.CreateEntity(g.world)
	if err := ecs.Add(g.world, volume, component.GlobalVolumeComponent.Kind(), &component.GlobalVolume{Volume: settings.Volume.Master}); err != nil {
		return nil, err
	}
	system.SetScreen(g.world, component.ScreenLoading)

	if err := g.enterGameplay(); err != nil {
		return nil, err
	}

	if settings.HotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir(), prefabs.Dir()+"/scripts")
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// enterGameplay loads the level prefabs, spawns the scene and starts its music.
func (g *Game) enterGameplay() error {
	cfg, err := entity.LoadLevelConfig(g.settings.Level, g.lib)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	if err := g.lib.LoadTracks(context.Background(), cfg.Tracks); err != nil {
		return fmt.Errorf("load music: %w", err)
	}
	lvl, err := entity.SpawnLevel(g.world, cfg)
	if err != nil {
		return err
	}
	g.log.Info("creating playlist",
		zap.String("level", cfg.Name),
		zap.Int("tracks", len(cfg.Tracks)),
		zap.Int("asteroids", len(lvl.Asteroids)))

	system.SetScreen(g.world, component.ScreenGameplay)
	system.StartMusic(g.world)
	return nil
}

func (g *Game) Update() error {
	if g.pendingReload {
		g.pendingReload = false
		if err := g.enterGameplay(); err != nil {
			g.log.Error("reload level", zap.Error(err))
		}
	}

	if changed := g.watcher.Poll(); len(changed) > 0 {
		g.log.Info("prefabs changed, reloading level", zap.Strings("files", changed))
		// Leave gameplay this step and re-enter on the next so the torn down
		// music is reported while gameplay is inactive.
		system.SetScreen(g.world, component.ScreenLoading)
		g.pendingReload = true
	}

	g.world.Advance(g.dt)
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		t := g.world.Time()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  step: %d  music: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), t.Step, len(g.audio.Active(component.CategoryMusic))))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}

// Close releases audio sinks and the prefab watcher.
func (g *Game) Close() {
	g.audio.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", zap.Error(err))
		}
	}
}

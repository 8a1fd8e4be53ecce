package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/orbital/assets"
	"github.com/milk9111/orbital/logging"
	"github.com/milk9111/orbital/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and console logging")
	levelName := flag.String("level", "", "level prefab in prefabs/ (overrides settings.yaml)")
	assetDir := flag.String("assets", "", "asset directory (overrides settings.yaml)")
	volume := flag.Float64("volume", -1, "master volume 0..1 (overrides settings.yaml)")
	hotReload := flag.Bool("watch", false, "reload the level when prefabs change on disk")
	flag.Parse()

	settings, err := prefabs.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		settings.Level = *levelName
	}
	if *assetDir != "" {
		settings.AssetDir = *assetDir
	}
	if *volume >= 0 {
		settings.Volume.Master = *volume
	}
	if *hotReload {
		settings.HotReload = true
	}

	logger, err := logging.New(logging.Config{Level: settings.LogLevel, Debug: *debug})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.TPS)

	lib := assets.NewLibrary(os.DirFS(settings.AssetDir), audio.NewContext(assets.SampleRate))

	game, err := NewGame(settings, lib, logger, *debug)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}

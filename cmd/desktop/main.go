package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/warpfield/internal/audio"
	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/desktop"
	"github.com/tomz197/warpfield/internal/logging"
	"github.com/tomz197/warpfield/internal/object"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger, closer, err := logging.New(settings, os.Stderr)
	if err != nil {
		log.Fatal("failed to set up logging", "err", err)
	}
	defer closer.Close()

	var sound object.Effects
	if settings.Audio {
		sink, err := audio.Open(settings.Volume)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sink.Close()
			sound = sink
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("warpfield")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(settings.TargetFPS)

	w := desktop.New(desktop.Options{Seed: settings.Seed, Effects: sound, Logger: logger})
	logger.Info("desktop game started", "seed", settings.Seed, "tps", settings.TargetFPS, "audio", sound != nil)
	if err := ebiten.RunGame(w); err != nil {
		logger.Error("game error", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

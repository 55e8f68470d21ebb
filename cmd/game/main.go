package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/warpfield/internal/audio"
	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/logging"
	"github.com/tomz197/warpfield/internal/loop"
	"github.com/tomz197/warpfield/internal/object"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	// Anything written to the terminal would tear the playfield, so logs only
	// go to WARPFIELD_LOG_FILE here.
	logger, closer, err := logging.New(settings, io.Discard)
	if err != nil {
		log.Fatal("failed to set up logging", "err", err)
	}

	err = run(settings, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *log.Logger) error {
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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("local game started", "seed", settings.Seed, "fps", settings.TargetFPS, "audio", sound != nil)
	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		FPS:     settings.TargetFPS,
		Seed:    settings.Seed,
		Effects: sound,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
	}
	return err
}

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"nusantara/internal/assets"
	"nusantara/internal/audio"
	"nusantara/internal/config"
	"nusantara/internal/game"
)

func main() {
	// Run from the executable's directory so public/ resolves in deployed
	// builds. "go run" binaries live in a go-build temp dir and are left alone.
	if execPath, err := os.Executable(); err == nil {
		if execDir := filepath.Dir(execPath); !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	logger := logrus.New()
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("loading config")
	}
	logger.SetLevel(cfg.Level())
	log := logger.WithField("session", uuid.New().String())

	assets.Init(cfg.ImageRoot)

	sound := audio.NewSilent(log)
	if cfg.Audio {
		if sound, err = audio.New(log); err != nil {
			log.WithError(err).Warn("Audio unavailable, continuing without sound")
			sound = audio.NewSilent(log)
		}
	}
	defer sound.Close()

	g, err := game.New(cfg, sound, log)
	if err != nil {
		log.WithError(err).Fatal("building game")
	}
	g.Run()
	log.Info("exiting")
}

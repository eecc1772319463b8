// Package config reads runtime settings from NUSANTARA_* environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Width            int32   `env:"NUSANTARA_WIDTH"             envDefault:"1280"`
	Height           int32   `env:"NUSANTARA_HEIGHT"            envDefault:"720"`
	TargetFPS        int32   `env:"NUSANTARA_TARGET_FPS"        envDefault:"60"`
	MouseSensitivity float32 `env:"NUSANTARA_MOUSE_SENSITIVITY" envDefault:"0.003"`
	StartZone        string  `env:"NUSANTARA_START_ZONE"        envDefault:"lobby"`
	LogLevel         string  `env:"NUSANTARA_LOG_LEVEL"         envDefault:"info"`
	Audio            bool    `env:"NUSANTARA_AUDIO"             envDefault:"true"`
	Debug            bool    `env:"NUSANTARA_DEBUG"             envDefault:"false"`
	ImageRoot        string  `env:"NUSANTARA_IMAGE_ROOT"        envDefault:"public"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MouseSensitivity <= 0 {
		return fmt.Errorf("mouse sensitivity must be positive, got %v", c.MouseSensitivity)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured log level. Validate has already rejected
// unknown names.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

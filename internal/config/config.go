// Package config provides YAML-based configuration loading for towerflap.
// Physics constants are fixed in the simulation; this package only carries
// the tick rate, seed, logging, sprite dimensions and front-end settings.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/towerflap/internal/core"
)

// Config contains all settings loaded at startup.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Seed     int64          `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
	Sprites  Sprites        `yaml:"sprites"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty: stderr for headless/window, discarded for the terminal UI
}

// Sprites holds the pixel dimensions of every drawable on the 400x708 canvas.
// The simulation sizes bounding boxes from these; front ends draw them.
type Sprites struct {
	PlayerNormal   core.Size `yaml:"player_normal"`
	PlayerFlap     core.Size `yaml:"player_flap"`
	PlayerDead     core.Size `yaml:"player_dead"`
	TowerTop       core.Size `yaml:"tower_top"`
	TowerBottom    core.Size `yaml:"tower_bottom"`
	ScorePanel     core.Size `yaml:"score_panel"`
	RestartControl core.Size `yaml:"restart_control"`
}

// WindowConfig defines settings for the ebiten window front end.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// TerminalConfig defines settings for the Bubble Tea front end.
type TerminalConfig struct {
	Colors   bool `yaml:"colors"`
	ShowHelp bool `yaml:"show_help"`
}

// Runtime returns the simulation runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}

// Validate checks everything the session and front ends rely on.
// Called once at startup so missing or broken sprite metrics fail fast.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 || c.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("tick_rate must be in 1..1000, got %d", c.TickRate))
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	for _, s := range c.Sprites.named() {
		if s.size.W <= 0 || s.size.H <= 0 {
			errs = append(errs, fmt.Errorf("sprites.%s must have positive w and h, got %dx%d", s.name, s.size.W, s.size.H))
		}
	}

	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

type namedSize struct {
	name string
	size core.Size
}

func (s Sprites) named() []namedSize {
	return []namedSize{
		{"player_normal", s.PlayerNormal},
		{"player_flap", s.PlayerFlap},
		{"player_dead", s.PlayerDead},
		{"tower_top", s.TowerTop},
		{"tower_bottom", s.TowerBottom},
		{"score_panel", s.ScorePanel},
		{"restart_control", s.RestartControl},
	}
}

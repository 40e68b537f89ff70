package config

import (
	_ "embed"

	"github.com/vovakirdan/towerflap/internal/core"
)

//go:embed defaults/towerflap.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// Must stay in sync with defaults/towerflap.yaml.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Log: LogConfig{
			Level: "info",
		},
		Sprites: DefaultSprites(),
		Window: WindowConfig{
			Title: "Tower Flap",
			Scale: 1,
		},
		Terminal: TerminalConfig{
			Colors:   true,
			ShowHelp: true,
		},
	}
}

// DefaultSprites returns the dimensions of the stock sprite set.
func DefaultSprites() Sprites {
	return Sprites{
		PlayerNormal:   core.Size{W: 52, H: 37},
		PlayerFlap:     core.Size{W: 52, H: 41},
		PlayerDead:     core.Size{W: 37, H: 52},
		TowerTop:       core.Size{W: 78, H: 460},
		TowerBottom:    core.Size{W: 78, H: 460},
		ScorePanel:     core.Size{W: 226, H: 114},
		RestartControl: core.Size{W: 116, H: 61},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

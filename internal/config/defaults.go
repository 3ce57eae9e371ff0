package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration used when neither a
// config file nor the embedded YAML can be read.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Kinds:  8,
		},
		Rules: RulesConfig{
			MaxCycles:          0,
			SettleInitial:      true,
			ReshuffleWhenStuck: true,
		},
		Display: DisplayConfig{
			CellWidth:      3,
			AnimationTicks: 4,
			ShowHints:      true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}

package config

import (
	_ "embed"
)

//go:embed defaults/numbertiles.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default Number Tiles configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:       5,
			StartBound: 3,
		},
		Controls: ControlsConfig{
			WrapCursor: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// Package config provides YAML-based configuration loading for the game.
package config

import "fmt"

// GameConfig contains all tunable parameters for Number Tiles.
type GameConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig defines the board geometry and starting tiles.
type BoardConfig struct {
	// Size is the number of rows and columns.
	Size int `yaml:"size"`

	// StartBound is the exclusive upper bound on randomly generated
	// starting tiles. The default of 3 yields boards of ones and twos.
	StartBound int `yaml:"start_bound"`
}

// ControlsConfig defines cursor behavior.
type ControlsConfig struct {
	// WrapCursor makes the cursor wrap around board edges instead of
	// stopping at them.
	WrapCursor bool `yaml:"wrap_cursor"`
}

// Validate checks that the configuration is playable.
func (c GameConfig) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 32 {
		return fmt.Errorf("config: board size %d out of range [2, 32]", c.Board.Size)
	}
	if c.Board.StartBound < 2 {
		return fmt.Errorf("config: start_bound %d must be at least 2", c.Board.StartBound)
	}
	return nil
}

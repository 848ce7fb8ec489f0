// Package config provides YAML-based game configuration loading and
// difficulty management for 2048.
package config

import (
	"fmt"
)

// Board size limits accepted from configuration files.
const (
	MinBoardSize = 2
	MaxBoardSize = 16
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board      T2048Board       `yaml:"board"`
	Spawn      T2048Spawn       `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// T2048Board defines the grid and its win condition.
type T2048Board struct {
	Size       int `yaml:"size"`        // Cells per side
	MaxPiece   int `yaml:"max_piece"`   // Tile that wins a classic game, 0 = none
	StartTiles int `yaml:"start_tiles"` // Tiles placed when a game starts
}

// T2048Spawn defines how new tiles appear after a move.
type T2048Spawn struct {
	Spawn4Prob float64 `yaml:"spawn4_prob"` // Probability of a 4 instead of a 2
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	Spawn4Increase float64 `yaml:"spawn4_increase"` // Added to spawn4_prob at max difficulty
}

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	size := c.Board.Size
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("config: board size %d outside [%d, %d]", size, MinBoardSize, MaxBoardSize)
	}
	if mp := c.Board.MaxPiece; mp != 0 && (mp < 4 || mp&(mp-1) != 0) {
		return fmt.Errorf("config: max_piece %d is not a power of two above 2", mp)
	}
	if c.Board.StartTiles < 0 || c.Board.StartTiles > size*size {
		return fmt.Errorf("config: start_tiles %d does not fit a %dx%d board", c.Board.StartTiles, size, size)
	}
	if p := c.Spawn.Spawn4Prob; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn4_prob %.2f outside [0, 1]", p)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value onto a preset; unknown values yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Package config provides YAML-based game configuration loading
// for the SameGame platform.
package config

// SameGameConfig contains all tunables for a SameGame session.
type SameGameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Render  RenderConfig  `yaml:"render"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the board dimensions used for random boards.
// Loaded boards keep the dimensions of their save file.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines how tiles are drawn.
type RenderConfig struct {
	// CellWidth is the width of one tile in terminal characters.
	// Two characters per tile roughly squares the aspect ratio.
	CellWidth int `yaml:"cell_width"`
}

// ScoringConfig defines the scoring rules beyond the fixed (n-1)² per erase.
type ScoringConfig struct {
	// ClearBonus is added once when the board is fully cleared.
	ClearBonus int `yaml:"clear_bonus"`
}

// Normalize fills in unusable values with defaults.
func (c *SameGameConfig) Normalize() {
	def := DefaultSameGameConfig()
	if c.Board.Width <= 0 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height <= 0 {
		c.Board.Height = def.Board.Height
	}
	if c.Render.CellWidth <= 0 {
		c.Render.CellWidth = def.Render.CellWidth
	}
	if c.Scoring.ClearBonus < 0 {
		c.Scoring.ClearBonus = 0
	}
}

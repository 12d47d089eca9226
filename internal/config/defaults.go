package config

import (
	_ "embed"
)

//go:embed defaults/samegame.yaml
var defaultSameGameYAML []byte

// DefaultSameGameConfig returns the default SameGame configuration.
// Board dimensions match the classic 20x10 layout.
func DefaultSameGameConfig() SameGameConfig {
	return SameGameConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 10,
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
		Scoring: ScoringConfig{
			ClearBonus: 500,
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/harvest.yaml
var defaultHarvestYAML []byte

// DefaultHarvestConfig returns the default configuration, used when no
// config file exists and the embedded YAML fails to parse.
func DefaultHarvestConfig() HarvestConfig {
	return HarvestConfig{
		Board: BoardConfig{
			Droppables:   5,
			RandomLayout: true,
			FixedLayout: []CellConfig{
				{X: 1, Y: 0},
				{X: 3, Y: 2},
				{X: 5, Y: 5},
				{X: 7, Y: 3},
				{X: 9, Y: 9},
			},
		},
		PickUp: PickUpConfig{
			Trail: true,
		},
		FillUp: FillUpConfig{
			VisitThreshold: 5,
			FillOnStart:    true,
		},
	}
}

// Package config provides YAML-based configuration loading for the harvest
// game: board layout options and per-rule-set defaults.
package config

// HarvestConfig contains all user-tunable configuration.
type HarvestConfig struct {
	Board  BoardConfig  `yaml:"board"`
	PickUp PickUpConfig `yaml:"pickup"`
	FillUp FillUpConfig `yaml:"fillup"`
}

// BoardConfig defines how the droppable batch is laid out.
type BoardConfig struct {
	Droppables   int          `yaml:"droppables"`
	RandomLayout bool         `yaml:"random_layout"`
	FixedLayout  []CellConfig `yaml:"fixed_layout"`
}

// CellConfig is a board coordinate in configuration files.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PickUpConfig defines pick-up rule defaults.
type PickUpConfig struct {
	Trail bool `yaml:"trail"`
}

// FillUpConfig defines fill-up rule defaults.
type FillUpConfig struct {
	VisitThreshold int  `yaml:"visit_threshold"`
	FillOnStart    bool `yaml:"fill_on_start"`
}

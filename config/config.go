// Package config loads world construction options from YAML, the way the
// wider example pack's vu engine loads shader and scene descriptions with
// gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duskfall/swept2d/world"
	"github.com/duskfall/swept2d/worlderr"
)

// WorldConfig describes the construction options for a world.World.
type WorldConfig struct {
	// CellSize is the side length of the (square) grid cells. A good
	// default is 64.
	CellSize float64 `yaml:"cellSize"`
}

// DefaultWorldConfig returns the engine's documented default.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{CellSize: world.DefaultCellSize}
}

// Load reads a YAML document from path into a WorldConfig, filling in
// DefaultWorldConfig's values for anything the document omits.
func Load(path string) (WorldConfig, error) {
	cfg := DefaultWorldConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return WorldConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Decode onto the defaulted struct so a partial document (e.g. just
	// cellSize) doesn't zero out the rest.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.CellSize <= 0 {
		return WorldConfig{}, fmt.Errorf("config: %s: %w", path, worlderr.ErrInvalidCellSize)
	}
	return cfg, nil
}

// NewWorld builds a *world.World[T] from the config.
func NewWorld[T comparable](cfg WorldConfig) (*world.World[T], error) {
	return world.New[T](cfg.CellSize)
}

package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"` // RGBA
}

// DefaultConfig returns a sensible windowed configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "trellis",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
	}
}

// LoadConfig reads a TOML config file, layered over DefaultConfig so partial
// files only override the keys they set.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads atlas settings from defaults, an optional JSON file
// and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf16"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/geom"
)

var (
	ErrInvalidLimits = errors.New("config: invalid scale limits")
	ErrInvalidHeight = errors.New("config: height percent must be in (0, 100]")
)

// Config holds all atlas settings.
type Config struct {
	Seed          int64   `json:"seed"`
	CenterX       float64 `json:"center_x"`
	CenterZ       float64 `json:"center_z"`
	Scale         float64 `json:"scale"`
	ScaleMin      float64 `json:"scale_min"`
	ScaleMax      float64 `json:"scale_max"`
	ScaleStep     float64 `json:"scale_step"`
	HeightPercent int     `json:"height_percent"`
	// PinchRows is the vertical drag, in terminal rows, that doubles the scale.
	PinchRows float64 `json:"pinch_rows"`
	Export    Export  `json:"export"`
	LogPath   string  `json:"log_path"`
}

// Export holds PNG snapshot settings.
type Export struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Dir    string `json:"dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:          0,
		Scale:         1,
		ScaleMin:      0.25,
		ScaleMax:      4,
		ScaleStep:     0.25,
		HeightPercent: 100,
		PinchRows:     8,
		Export: Export{
			Width:  1024,
			Height: 768,
			Dir:    ".",
		},
	}
}

// Load starts from Default, overlays the JSON file at path when path is not
// empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ATLAS_SEED"); v != "" {
		seed, err := ParseSeed(v)
		if err != nil {
			return fmt.Errorf("config: ATLAS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("ATLAS_LOG"); v != "" {
		c.LogPath = v
	}
	return nil
}

// ParseSeed accepts a numeric seed or, like the game, hashes any other text
// over its UTF-16 code units.
func ParseSeed(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty seed")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return int64(h), nil
}

// Validate checks the scale limits and layout settings.
func (c Config) Validate() error {
	if c.ScaleMin <= 0 || c.ScaleMax < c.ScaleMin || c.ScaleStep <= 0 {
		return fmt.Errorf("%w: min=%v max=%v step=%v", ErrInvalidLimits, c.ScaleMin, c.ScaleMax, c.ScaleStep)
	}
	if c.HeightPercent <= 0 || c.HeightPercent > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidHeight, c.HeightPercent)
	}
	if c.PinchRows <= 0 {
		return fmt.Errorf("config: pinch rows must be positive, got %v", c.PinchRows)
	}
	return nil
}

func (c Config) Limits() atlas.Limits {
	return atlas.Limits{Min: c.ScaleMin, Max: c.ScaleMax, Step: c.ScaleStep}
}

func (c Config) Center() geom.Point {
	return geom.Point{X: c.CenterX, Z: c.CenterZ}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("ATLAS_SEED", "")
	t.Setenv("ATLAS_LOG", "")
	path := filepath.Join(t.TempDir(), "atlas.json")
	body := `{"seed": 12345, "center_x": 100, "center_z": -200, "scale_step": 0.5, "export": {"width": 640}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 12345 || cfg.CenterX != 100 || cfg.CenterZ != -200 || cfg.ScaleStep != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Export.Width != 640 || cfg.Export.Height != 768 {
		t.Errorf("export = %+v, want width override and default height", cfg.Export)
	}
	if cfg.ScaleMax != 4 {
		t.Errorf("unset field lost its default: ScaleMax = %v", cfg.ScaleMax)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ATLAS_SEED", "-42")
	t.Setenv("ATLAS_LOG", "/tmp/atlas.log")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != -42 || cfg.LogPath != "/tmp/atlas.log" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-4172144997902289642", -4172144997902289642},
		{"a", 97},
		{"ab", 31*97 + 98},
		{"slime", 109526728},
		{"héllo", 103094734},
		// surrogate pairs hash as two units
		{"😀", 1772899},
		{"😀 world", -1555929451},
	}
	for _, tt := range tests {
		got, err := ParseSeed(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseSeed(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseSeed(""); err == nil {
		t.Error("ParseSeed(\"\") should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero min", func(c *Config) { c.ScaleMin = 0 }, ErrInvalidLimits},
		{"max below min", func(c *Config) { c.ScaleMax = 0.1 }, ErrInvalidLimits},
		{"zero step", func(c *Config) { c.ScaleStep = 0 }, ErrInvalidLimits},
		{"height zero", func(c *Config) { c.HeightPercent = 0 }, ErrInvalidHeight},
		{"height over", func(c *Config) { c.HeightPercent = 101 }, ErrInvalidHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

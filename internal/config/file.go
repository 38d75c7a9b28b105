package config

// This file implements the optional YAML overlay (--config). Only keys present
// in the file override the defaults; pointer fields distinguish "absent" from
// an explicit zero so Validate can reject the latter.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the on-disk shape of a config file.
//
//	input_dir: in
//	output_dir: out
//	backend: native
//	geometry:
//	  base_height: 29
//	  crop: {width: 121, height: 25, x: 51, y: 3}
//	  dpi: 1200
//	  scales: [1, 2, 3]
type yamlConfig struct {
	InputDir  *string       `yaml:"input_dir"`
	OutputDir *string       `yaml:"output_dir"`
	Backend   *string       `yaml:"backend"`
	Strict    *bool         `yaml:"strict"`
	Geometry  *yamlGeometry `yaml:"geometry"`
}

type yamlGeometry struct {
	BaseHeight *int      `yaml:"base_height"`
	Crop       *yamlCrop `yaml:"crop"`
	DPI        *int      `yaml:"dpi"`
	Scales     []int     `yaml:"scales"`
}

type yamlCrop struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
	X      *int `yaml:"x"`
	Y      *int `yaml:"y"`
}

// LoadFile reads the YAML file at path and applies it on top of cfg.
// Unknown keys are rejected so typos don't silently fall back to defaults.
// An empty file is a no-op.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	var dto yamlConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	dto.apply(cfg)
	return nil
}

func (y *yamlConfig) apply(cfg *Config) {
	if y.InputDir != nil {
		cfg.InputDir = NormalizeDirArg(*y.InputDir)
	}
	if y.OutputDir != nil {
		cfg.OutputDir = NormalizeDirArg(*y.OutputDir)
	}
	if y.Backend != nil {
		cfg.Backend = Backend(*y.Backend)
	}
	if y.Strict != nil {
		cfg.Strict = *y.Strict
	}
	if y.Geometry == nil {
		return
	}

	g := &cfg.Geometry
	setInt(&g.BaseHeight, y.Geometry.BaseHeight)
	setInt(&g.DPI, y.Geometry.DPI)
	if y.Geometry.Scales != nil {
		g.Scales = append([]int(nil), y.Geometry.Scales...)
	}
	if c := y.Geometry.Crop; c != nil {
		setInt(&g.CropWidth, c.Width)
		setInt(&g.CropHeight, c.Height)
		setInt(&g.CropX, c.X)
		setInt(&g.CropY, c.Y)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

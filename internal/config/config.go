// Package config holds runtime configuration: defaults, the optional YAML
// overlay, and validation. Running with no flags and no config file uses the
// geometry and tool names below unchanged.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// Backend selects how the rasterizer and crop tool are executed.
type Backend string

const (
	BackendExternal Backend = "external" // rsvg-convert + ImageMagick convert (default).
	BackendNative   Backend = "native"   // In-process oksvg/rasterx rendering.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Geometry holds the fixed size constants. They were found by trial and
// error against the upstream badge artwork; every pixel value is multiplied
// by the scale factor of the variant being produced.
type Geometry struct {
	BaseHeight int   // Default: 29. Uncropped raster height at 1x.
	CropWidth  int   // Default: 121.
	CropHeight int   // Default: 25.
	CropX      int   // Default: 51.
	CropY      int   // Default: 3.
	DPI        int   // Default: 1200. Passed as both -d and -p.
	Scales     []int // Default: 1, 2, 3.
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then mutated by CLI flags before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string // Default: "in".
	OutputDir string // Default: "out".

	Geometry Geometry

	// Tool commands (external backend).
	RasterizerCmd string // Fixed: "rsvg-convert".
	CropCmd       string // Fixed: "convert".

	// Behavior flags.
	Backend Backend
	Strict  bool // Surface non-zero tool exits instead of ignoring them.
	DryRun  bool

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode
	LogFile    string
	CheckOnly  bool
	ConfigFile string // Optional YAML overlay path.
}

// DefaultConfig returns a Config populated with the stock badge geometry and
// external tool names.
func DefaultConfig() Config {
	return Config{
		InputDir:  "in",
		OutputDir: "out",
		Geometry: Geometry{
			BaseHeight: 29,
			CropWidth:  121,
			CropHeight: 25,
			CropX:      51,
			CropY:      3,
			DPI:        1200,
			Scales:     []int{1, 2, 3},
		},
		RasterizerCmd: "rsvg-convert",
		CropCmd:       "convert",
		Backend:       BackendExternal,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and geometry. Directory paths are required
// unless running --check.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendExternal, BackendNative:
		// valid
	default:
		return errors.New("invalid backend (use 'external' or 'native')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := c.Geometry.Validate(); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("input and output directories must not be empty")
	}
	return nil
}

// Validate rejects non-positive sizes, negative offsets, and scale lists
// that are empty or repeat a factor (repeats would collide on output names).
func (g Geometry) Validate() error {
	sizes := []struct {
		name string
		v    int
	}{
		{"base height", g.BaseHeight},
		{"crop width", g.CropWidth},
		{"crop height", g.CropHeight},
		{"dpi", g.DPI},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%s must be positive (got %d)", s.name, s.v)
		}
	}
	if g.CropX < 0 || g.CropY < 0 {
		return fmt.Errorf("crop offset must not be negative (got +%d+%d)", g.CropX, g.CropY)
	}
	if len(g.Scales) == 0 {
		return errors.New("at least one scale factor is required")
	}
	seen := make(map[int]bool, len(g.Scales))
	for _, s := range g.Scales {
		if s < 1 || s > 9 {
			return fmt.Errorf("scale factor must be between 1 and 9 (got %d)", s)
		}
		if seen[s] {
			return fmt.Errorf("duplicate scale factor %d", s)
		}
		seen[s] = true
	}
	return nil
}

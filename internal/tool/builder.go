package tool

import (
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/planner"
)

// Command is one tool invocation. Stdout receives the process's standard
// output; nil discards it.
type Command struct {
	Name   string
	Args   []string
	Stdout io.Writer
}

// String renders the command line for logs. Arguments are not quoted.
func (c Command) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Rasterize builds the rsvg-convert call for one variant. The PNG is written
// to stdout, which the caller points at the exclusively created output file.
//
//	rsvg-convert -d 1200 -p 1200 -h <height> <input>
func Rasterize(cfg *config.Config, input string, height int, stdout io.Writer) Command {
	dpi := strconv.Itoa(cfg.Geometry.DPI)
	return Command{
		Name: cfg.RasterizerCmd,
		Args: []string{
			"-d", dpi,
			"-p", dpi,
			"-h", strconv.Itoa(height),
			input,
		},
		Stdout: stdout,
	}
}

// Crop builds the in-place ImageMagick crop for one output file.
//
//	convert <path> -crop WxH+X+Y <path>
func Crop(cfg *config.Config, path string, crop planner.Crop) Command {
	return Command{
		Name: cfg.CropCmd,
		Args: []string{path, "-crop", crop.String(), path},
	}
}

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/backmassage/assetconv/internal/tool"
)

type rasterArgs struct {
	height int
	input  string
}

// parseRasterArgs accepts the subset of rsvg-convert flags the pipeline
// uses: -d and -p (DPI, accepted and ignored as rsvg-convert does for
// pixel-sized output), -h <height>, and one input path.
func parseRasterArgs(args []string) (rasterArgs, error) {
	var ra rasterArgs
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-d", "-p", "-h":
			if i+1 >= len(args) {
				return ra, fmt.Errorf("option %s needs a value", a)
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil || v <= 0 {
				return ra, fmt.Errorf("invalid value %q for %s", args[i+1], a)
			}
			if a == "-h" {
				ra.height = v
			}
			i++
		default:
			if ra.input != "" {
				return ra, fmt.Errorf("unexpected argument %q", a)
			}
			ra.input = a
		}
	}
	if ra.input == "" {
		return ra, errors.New("no input file")
	}
	if ra.height == 0 {
		return ra, errors.New("output height (-h) is required")
	}
	return ra, nil
}

// rasterize renders the SVG at the requested height, preserving aspect
// ratio, and writes the PNG to cmd.Stdout.
func rasterize(cmd tool.Command) error {
	ra, err := parseRasterArgs(cmd.Args)
	if err != nil {
		return err
	}
	if cmd.Stdout == nil {
		return errors.New("no output stream")
	}

	f, err := os.Open(ra.input)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := renderSVG(f, ra.height)
	if err != nil {
		return fmt.Errorf("%s: %w", ra.input, err)
	}
	return png.Encode(cmd.Stdout, img)
}

func renderSVG(r io.Reader, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New("document has no usable viewBox")
	}

	width := int(math.Round(icon.ViewBox.W * float64(height) / icon.ViewBox.H))
	if width < 1 {
		width = 1
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

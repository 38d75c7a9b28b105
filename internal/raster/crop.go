package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/backmassage/assetconv/internal/tool"
)

var reGeometry = regexp.MustCompile(`^(\d+)x(\d+)\+(\d+)\+(\d+)$`)

// parseGeometry parses a WxH+X+Y crop geometry.
func parseGeometry(s string) (image.Rectangle, error) {
	m := reGeometry.FindStringSubmatch(s)
	if m == nil {
		return image.Rectangle{}, fmt.Errorf("invalid geometry %q", s)
	}
	var n [4]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid geometry %q", s)
		}
		n[i] = v
	}
	w, h, x, y := n[0], n[1], n[2], n[3]
	if w == 0 || h == 0 {
		return image.Rectangle{}, fmt.Errorf("empty geometry %q", s)
	}
	return image.Rect(x, y, x+w, y+h), nil
}

// crop handles `convert <in> -crop WxH+X+Y <out>`. A rectangle that runs off
// the image is clipped to it, as ImageMagick does; one that misses the image
// entirely is an error.
func crop(cmd tool.Command) error {
	if len(cmd.Args) != 4 || cmd.Args[1] != "-crop" {
		return fmt.Errorf("unsupported arguments %v", cmd.Args)
	}
	in, geom, out := cmd.Args[0], cmd.Args[2], cmd.Args[3]

	rect, err := parseGeometry(geom)
	if err != nil {
		return err
	}

	src, err := decodePNG(in)
	if err != nil {
		return err
	}

	b := src.Bounds()
	rect = rect.Add(b.Min).Intersect(b)
	if rect.Empty() {
		return errors.New("geometry does not contain image")
	}

	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, src, rect, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return err
	}
	return writeReplace(out, buf.Bytes())
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// writeReplace writes data next to path and renames it over path, so an
// interrupted crop never leaves a truncated file behind.
func writeReplace(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".crop-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

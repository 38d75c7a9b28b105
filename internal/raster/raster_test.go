package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/planner"
	"github.com/backmassage/assetconv/internal/tool"
)

const badgeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
  <rect x="0" y="0" width="200" height="100" fill="#00aa6c"/>
</svg>`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func newRunner() (*Runner, config.Config) {
	cfg := config.DefaultConfig()
	return NewRunner(&cfg), cfg
}

// --- rasterize ---

func TestRun_RasterizeHeightAndAspect(t *testing.T) {
	r, cfg := newRunner()
	in := writeFile(t, t.TempDir(), "3.5-MCID-5.svg", []byte(badgeSVG))

	for _, scale := range []int{1, 2, 3} {
		var out bytes.Buffer
		h := planner.RasterHeight(cfg.Geometry, scale)
		res := r.Run(context.Background(), tool.Rasterize(&cfg, in, h, &out))
		if tool.Failed(res) {
			t.Fatalf("scale %d: %+v", scale, res)
		}

		img, err := png.Decode(&out)
		if err != nil {
			t.Fatalf("scale %d: decode: %v", scale, err)
		}
		b := img.Bounds()
		if b.Dy() != h {
			t.Errorf("scale %d: height = %d, want %d", scale, b.Dy(), h)
		}
		if b.Dx() != 2*h {
			t.Errorf("scale %d: width = %d, want %d (2:1 viewBox)", scale, b.Dx(), 2*h)
		}
		_, _, _, a := img.At(b.Dx()/2, b.Dy()/2).RGBA()
		if a == 0 {
			t.Errorf("scale %d: center pixel is transparent, rect not drawn", scale)
		}
	}
}

func TestRun_RasterizeMissingInput(t *testing.T) {
	r, cfg := newRunner()
	var out bytes.Buffer
	res := r.Run(context.Background(), tool.Rasterize(&cfg, filepath.Join(t.TempDir(), "nope.svg"), 29, &out))
	if res.Err != nil {
		t.Fatalf("missing input should be a tool failure, not a start error: %v", res.Err)
	}
	if res.ExitCode != 1 || !strings.HasPrefix(res.Stderr, "rsvg-convert: ") {
		t.Errorf("res = %+v", res)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %d bytes on failure", out.Len())
	}
}

func TestRun_RasterizeNoViewBox(t *testing.T) {
	r, cfg := newRunner()
	in := writeFile(t, t.TempDir(), "0.0-MCID-5.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	res := r.Run(context.Background(), tool.Rasterize(&cfg, in, 29, &bytes.Buffer{}))
	if res.ExitCode != 1 {
		t.Errorf("res = %+v, want exit 1", res)
	}
}

func TestParseRasterArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantH   int
		wantIn  string
		wantErr bool
	}{
		{"pipeline form", []string{"-d", "1200", "-p", "1200", "-h", "58", "a.svg"}, 58, "a.svg", false},
		{"height only", []string{"-h", "29", "a.svg"}, 29, "a.svg", false},
		{"missing height", []string{"a.svg"}, 0, "", true},
		{"missing input", []string{"-h", "29"}, 0, "", true},
		{"dangling flag", []string{"a.svg", "-h"}, 0, "", true},
		{"bad height", []string{"-h", "tall", "a.svg"}, 0, "", true},
		{"two inputs", []string{"-h", "29", "a.svg", "b.svg"}, 0, "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ra, err := parseRasterArgs(c.args)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if err == nil && (ra.height != c.wantH || ra.input != c.wantIn) {
				t.Errorf("got %+v", ra)
			}
		})
	}
}

// --- crop ---

// markedPNG writes a w×h white PNG with a single red pixel at (mx, my).
func markedPNG(t *testing.T, dir string, w, h, mx, my int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(mx, my, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return writeFile(t, dir, "score_ta_3.png", buf.Bytes())
}

func TestRun_CropInPlace(t *testing.T) {
	r, cfg := newRunner()
	dir := t.TempDir()
	path := markedPNG(t, dir, 200, 40, 51, 3)

	res := r.Run(context.Background(), tool.Crop(&cfg, path, planner.CropFor(cfg.Geometry, 1)))
	if tool.Failed(res) {
		t.Fatalf("crop failed: %+v", res)
	}

	img, err := decodePNG(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 121 || b.Dy() != 25 {
		t.Fatalf("bounds = %v, want 121x25", b)
	}
	r0, g0, b0, _ := img.At(0, 0).RGBA()
	if r0 != 0xffff || g0 != 0 || b0 != 0 {
		t.Errorf("origin pixel = %v, want the red marker at +51+3", img.At(0, 0))
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %d entries", len(entries))
	}
}

func TestRun_CropClipsToImage(t *testing.T) {
	r, cfg := newRunner()
	path := markedPNG(t, t.TempDir(), 100, 20, 0, 0)

	res := r.Run(context.Background(), tool.Crop(&cfg, path, planner.Crop{Width: 121, Height: 25, X: 51, Y: 3}))
	if tool.Failed(res) {
		t.Fatalf("crop failed: %+v", res)
	}
	img, err := decodePNG(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 49 || b.Dy() != 17 {
		t.Errorf("bounds = %v, want 49x17", b)
	}
}

func TestRun_CropOutsideImage(t *testing.T) {
	r, cfg := newRunner()
	path := markedPNG(t, t.TempDir(), 10, 10, 0, 0)
	res := r.Run(context.Background(), tool.Crop(&cfg, path, planner.Crop{Width: 5, Height: 5, X: 50, Y: 50}))
	if res.ExitCode != 1 || !strings.Contains(res.Stderr, "does not contain image") {
		t.Errorf("res = %+v", res)
	}
}

func TestRun_CropEmptyFile(t *testing.T) {
	r, cfg := newRunner()
	path := writeFile(t, t.TempDir(), "score_ta_1.png", nil)
	res := r.Run(context.Background(), tool.Crop(&cfg, path, planner.CropFor(cfg.Geometry, 1)))
	if res.Err != nil || res.ExitCode != 1 {
		t.Errorf("empty PNG should fail like convert does: %+v", res)
	}
}

func TestParseGeometry(t *testing.T) {
	cases := []struct {
		in      string
		want    image.Rectangle
		wantErr bool
	}{
		{"121x25+51+3", image.Rect(51, 3, 172, 28), false},
		{"363x75+153+9", image.Rect(153, 9, 516, 84), false},
		{"0x25+0+0", image.Rectangle{}, true},
		{"121x25", image.Rectangle{}, true},
		{"121x25-1+3", image.Rectangle{}, true},
		{"", image.Rectangle{}, true},
	}
	for _, c := range cases {
		got, err := parseGeometry(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("parseGeometry(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("parseGeometry(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// --- dispatch ---

func TestRun_UnknownCommand(t *testing.T) {
	r, _ := newRunner()
	res := r.Run(context.Background(), tool.Command{Name: "inkscape"})
	if res.Err == nil {
		t.Error("unknown command should be a start error")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	r, cfg := newRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := r.Run(ctx, tool.Crop(&cfg, "x.png", planner.CropFor(cfg.Geometry, 1)))
	if res.Err == nil {
		t.Error("cancelled context should be a start error")
	}
}

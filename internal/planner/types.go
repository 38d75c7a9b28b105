package planner

import (
	"fmt"

	"github.com/backmassage/assetconv/internal/naming"
)

// RasterJob is one (asset, scale) rasterization work item.
type RasterJob struct {
	Asset      naming.Asset
	Scale      int
	Height     int    // Raster output height in pixels.
	OutputPath string // Exclusive-create target.
}

// Crop is a pixel rectangle in ImageMagick geometry terms.
type Crop struct {
	Width, Height int
	X, Y          int
}

// String renders the rectangle as a WxH+X+Y geometry.
func (c Crop) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", c.Width, c.Height, c.X, c.Y)
}

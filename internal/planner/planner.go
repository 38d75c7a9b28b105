package planner

import (
	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/naming"
)

// RasterHeight is the uncropped output height for a scale factor.
func RasterHeight(g config.Geometry, scale int) int {
	return g.BaseHeight * scale
}

// CropFor returns the crop rectangle for a scale factor. Every edge is
// multiplied by scale so each density variant frames the same region.
func CropFor(g config.Geometry, scale int) Crop {
	return Crop{
		Width:  g.CropWidth * scale,
		Height: g.CropHeight * scale,
		X:      g.CropX * scale,
		Y:      g.CropY * scale,
	}
}

// BuildRasterJobs fans each asset out into one job per configured scale.
// Order is asset-major: all scales of the first asset, then the next.
func BuildRasterJobs(cfg *config.Config, assets []naming.Asset) []RasterJob {
	jobs := make([]RasterJob, 0, len(assets)*len(cfg.Geometry.Scales))
	for _, a := range assets {
		for _, scale := range cfg.Geometry.Scales {
			jobs = append(jobs, RasterJob{
				Asset:      a,
				Scale:      scale,
				Height:     RasterHeight(cfg.Geometry, scale),
				OutputPath: naming.OutputPath(cfg.OutputDir, a.Score, scale),
			})
		}
	}
	return jobs
}

package pipeline

import (
	"context"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/logging"
	"github.com/backmassage/assetconv/internal/naming"
	"github.com/backmassage/assetconv/internal/planner"
	"github.com/backmassage/assetconv/internal/tool"
)

// Crop trims each output file in place. The scale factor is read back from
// the file name rather than carried alongside it, so any list of output
// paths can be re-cropped.
func Crop(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	runner tool.Runner,
	outputs []string,
	stats *RunStats,
) error {
	for i, path := range outputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		scale := naming.ScaleFromName(path)
		cmd := tool.Crop(cfg, path, planner.CropFor(cfg.Geometry, scale))

		if cfg.DryRun {
			log.Info("[DRY] %s", cmd)
			continue
		}

		log.Debug(cfg.Verbose, "[%d/%d] crop %s", i+1, len(outputs), cmd.Args[2])
		res := runner.Run(ctx, cmd)
		stats.Cropped++
		if err := settle(cfg, log, cmd, res, stats); err != nil {
			return err
		}
	}
	return nil
}

package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/logging"
	"github.com/backmassage/assetconv/internal/naming"
	"github.com/backmassage/assetconv/internal/planner"
	"github.com/backmassage/assetconv/internal/tool"
)

// Rasterize renders every scale variant of every asset and returns the
// output paths in job order (asset-major, then scale).
//
// Each output is opened with O_EXCL: if it already exists the run aborts
// with an error satisfying errors.Is(err, fs.ErrExist), and files created
// earlier in the run are left in place.
func Rasterize(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	runner tool.Runner,
	assets []naming.Asset,
	stats *RunStats,
) ([]string, error) {
	jobs := planner.BuildRasterJobs(cfg, assets)
	outputs := make([]string, 0, len(jobs))

	if cfg.DryRun {
		for _, job := range jobs {
			cmd := tool.Rasterize(cfg, job.Asset.Path, job.Height, nil)
			if _, err := os.Stat(job.OutputPath); err == nil {
				log.Warn("[DRY] %s already exists; a real run would stop here", job.OutputPath)
			}
			log.Info("[DRY] %s > %s", cmd, job.OutputPath)
			outputs = append(outputs, job.OutputPath)
		}
		return outputs, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Debug(cfg.Verbose, "[%d/%d] %s (score %s) -> %s",
			i+1, len(jobs), job.Asset.Path, job.Asset.Score, job.OutputPath)

		if err := rasterizeOne(ctx, cfg, log, runner, job, stats); err != nil {
			return nil, err
		}
		outputs = append(outputs, job.OutputPath)
	}
	return outputs, nil
}

func rasterizeOne(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	runner tool.Runner,
	job planner.RasterJob,
	stats *RunStats,
) error {
	f, err := os.OpenFile(job.OutputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	cmd := tool.Rasterize(cfg, job.Asset.Path, job.Height, f)
	res := runner.Run(ctx, cmd)
	closeErr := f.Close()
	stats.Rendered++

	if err := settle(cfg, log, cmd, res, stats); err != nil {
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("write %s: %w", job.OutputPath, closeErr)
	}
	return nil
}

// settle counts and logs a failed tool run, then hands the result to
// tool.Settle, which decides whether it stops the batch.
func settle(cfg *config.Config, log *logging.Logger, cmd tool.Command, res tool.Result, stats *RunStats) error {
	if tool.Failed(res) {
		stats.ToolFailures++
		log.Debug(cfg.Verbose, "%s failed (exit %d): %s", cmd.Name, res.ExitCode, tool.FirstLine(res.Stderr))
	}
	return tool.Settle(cfg.Strict, cmd, res)
}

package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/display"
	"github.com/backmassage/assetconv/internal/logging"
	"github.com/backmassage/assetconv/internal/tool"
)

// Run is the top-level batch entry point: discover → rasterize → crop.
// Any error aborts the batch immediately; nothing already written is
// removed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, runner tool.Runner) (RunStats, error) {
	var stats RunStats

	assets, err := Discover(cfg.InputDir)
	if err != nil {
		return stats, err
	}
	stats.Assets = len(assets)
	log.Debug(cfg.Verbose, "Found %s in %s", display.FormatCount(len(assets), "badge"), cfg.InputDir)

	outputs, err := Rasterize(ctx, cfg, log, runner, assets, &stats)
	if err != nil {
		return stats, err
	}

	if err := Crop(ctx, cfg, log, runner, outputs, &stats); err != nil {
		return stats, err
	}

	if !cfg.DryRun {
		stats.BytesWritten = totalSize(outputs)
	}
	logSummary(cfg, log, &stats)
	return stats, nil
}

// Report prints the completion line. It is the only output of a default run.
func Report(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Files saved to '%s/'\n", cfg.OutputDir)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Debug(cfg.Verbose, "Assets: %d  Outputs: %d  Cropped: %d  Tool failures: %d  Written: %s",
		stats.Assets, stats.Outputs(), stats.Cropped, stats.ToolFailures, display.FormatBytes(stats.BytesWritten))
	if stats.ToolFailures > 0 && !cfg.Strict {
		log.Debug(cfg.Verbose, "Some tool runs failed; affected files may be empty. Re-run with --strict to stop on failure.")
	}
}

func totalSize(paths []string) int64 {
	var n int64
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil {
			n += fi.Size()
		}
	}
	return n
}

package raster

import (
	"context"
	"fmt"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/tool"
)

// Runner dispatches on the command name configured for each tool.
type Runner struct {
	rasterizer string
	cropper    string
}

// NewRunner returns a Runner that answers to cfg's tool names.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{rasterizer: cfg.RasterizerCmd, cropper: cfg.CropCmd}
}

// Run implements tool.Runner.
func (r *Runner) Run(ctx context.Context, cmd tool.Command) tool.Result {
	if err := ctx.Err(); err != nil {
		return tool.Result{ExitCode: -1, Err: err}
	}

	var err error
	switch cmd.Name {
	case r.rasterizer:
		err = rasterize(cmd)
	case r.cropper:
		err = crop(cmd)
	default:
		return tool.Result{ExitCode: -1, Err: fmt.Errorf("native backend cannot run %q", cmd.Name)}
	}
	if err != nil {
		return tool.Result{ExitCode: 1, Stderr: cmd.Name + ": " + err.Error() + "\n"}
	}
	return tool.Result{}
}

// Package check provides system diagnostics (--check mode) and the
// pre-pipeline dependency validation (CheckDeps) for rsvg-convert and
// ImageMagick's convert.
package check

import (
	"errors"
	"os/exec"

	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/display"
	"github.com/backmassage/assetconv/internal/pipeline"
	"github.com/backmassage/assetconv/internal/tool"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrRasterizerNotFound = errors.New("rsvg-convert not found on PATH (install librsvg, or use --backend native)")
	ErrCropToolNotFound   = errors.New("convert not found on PATH (install ImageMagick, or use --backend native)")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// RunCheck reports tool availability, the selected backend, and how many
// badges the input directory holds. It returns false if the configured
// backend could not run.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	rasterOK := checkTool(log, cfg.RasterizerCmd, "--version")
	cropOK := checkTool(log, cfg.CropCmd, "-version")
	log.Success("native backend: built in (oksvg/rasterx)")

	ok := true
	switch cfg.Backend {
	case config.BackendExternal:
		log.Info("Backend: external")
		ok = rasterOK && cropOK
		if !ok {
			log.Warn("External tools missing; --backend native needs neither")
		}
	case config.BackendNative:
		log.Info("Backend: native")
	}

	checkInput(log, cfg.InputDir)
	return ok
}

// checkTool verifies name is on PATH and logs the first line of its
// version output.
func checkTool(log Logger, name, versionFlag string) bool {
	if _, err := lookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, versionFlag).Output()
	if err != nil {
		log.Warn("%s found but %s failed: %v", name, versionFlag, err)
		return true
	}
	log.Success("%s: %s", name, tool.FirstLine(string(out)))
	return true
}

// checkInput reports how many badges discovery would pick up.
func checkInput(log Logger, inputDir string) {
	assets, err := pipeline.Discover(inputDir)
	if err != nil {
		log.Warn("Input %s: %v", inputDir, err)
		return
	}
	log.Info("Input %s: %s", inputDir, display.FormatCount(len(assets), "badge"))
}

// CheckDeps is the pre-pipeline validation. The native backend needs
// nothing; the external backend needs both tools on PATH.
func CheckDeps(cfg *config.Config) error {
	if cfg.Backend != config.BackendExternal {
		return nil
	}
	if _, err := lookPath(cfg.RasterizerCmd); err != nil {
		return ErrRasterizerNotFound
	}
	if _, err := lookPath(cfg.CropCmd); err != nil {
		return ErrCropToolNotFound
	}
	return nil
}

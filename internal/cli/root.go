// Package cli wires flags, configuration, logging and the pipeline into the
// assetconv root command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetconv/internal/check"
	"github.com/backmassage/assetconv/internal/config"
	"github.com/backmassage/assetconv/internal/display"
	"github.com/backmassage/assetconv/internal/logging"
	"github.com/backmassage/assetconv/internal/pipeline"
	"github.com/backmassage/assetconv/internal/raster"
	"github.com/backmassage/assetconv/internal/tool"
)

var errCheckFailed = errors.New("system check failed")

// Execute runs the root command and returns the process exit code.
func Execute(version, commit string) int {
	cmd := newRootCmd(version, commit)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "assetconv: %v\n", err)
		return 1
	}
	return 0
}

// flagValues holds raw flag input. Only flags the user actually set are
// applied, so a --config file can sit between defaults and flags.
type flagValues struct {
	inputDir   string
	outputDir  string
	configFile string
	backend    string
	strict     bool
	dryRun     bool
	checkOnly  bool
	verbose    bool
	color      bool
	noColor    bool
	logFile    string
}

func newRootCmd(version, commit string) *cobra.Command {
	cmd, _ := newCommand(version, commit)
	return cmd
}

// newCommand builds the root command and returns the flag storage it binds.
func newCommand(version, commit string) (*cobra.Command, *flagValues) {
	fv := &flagValues{}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "assetconv",
		Short:         "Convert score badge SVGs into cropped 1x/2x/3x PNGs",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd, fv)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fv.inputDir, "in", defaults.InputDir, "directory holding the badge SVGs")
	f.StringVar(&fv.outputDir, "out", defaults.OutputDir, "directory the PNGs are written to (must not contain them yet)")
	f.StringVar(&fv.configFile, "config", "", "YAML file overriding geometry and directories")
	f.StringVar(&fv.backend, "backend", string(defaults.Backend), "tool backend: external | native")
	f.BoolVar(&fv.strict, "strict", false, "stop on the first tool that exits non-zero")
	f.BoolVarP(&fv.dryRun, "dry-run", "n", false, "log the commands that would run; write nothing")
	f.BoolVarP(&fv.checkOnly, "check", "c", false, "report tool availability and exit")
	f.BoolVarP(&fv.verbose, "verbose", "v", false, "log each step and a summary")
	f.BoolVar(&fv.color, "color", false, "force colored logs")
	f.BoolVar(&fv.noColor, "no-color", false, "disable colored logs")
	f.StringVarP(&fv.logFile, "log", "l", "", "append logs to file")
	return cmd, fv
}

// buildConfig layers defaults, the optional YAML file, then explicitly set
// flags, and validates the result.
func buildConfig(cmd *cobra.Command, fv *flagValues) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if fv.configFile != "" {
		if err := config.LoadFile(fv.configFile, &cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = fv.configFile
	}

	set := cmd.Flags().Changed
	if set("in") {
		cfg.InputDir = config.NormalizeDirArg(fv.inputDir)
	}
	if set("out") {
		cfg.OutputDir = config.NormalizeDirArg(fv.outputDir)
	}
	if set("backend") {
		cfg.Backend = config.Backend(strings.ToLower(fv.backend))
	}
	if set("strict") {
		cfg.Strict = fv.strict
	}
	cfg.DryRun = fv.dryRun
	cfg.CheckOnly = fv.checkOnly
	cfg.Verbose = fv.verbose
	cfg.LogFile = fv.logFile
	if fv.noColor {
		cfg.ColorMode = config.ColorNever
	} else if fv.color {
		cfg.ColorMode = config.ColorAlways
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		display.PrintBanner(cmd.OutOrStdout())
		if !check.RunCheck(cfg, log) {
			return errCheckFailed
		}
		return nil
	}

	log.Debug(cfg.Verbose, "In:  %s", cfg.InputDir)
	log.Debug(cfg.Verbose, "Out: %s", cfg.OutputDir)
	log.Debug(cfg.Verbose, "Backend: %s", cfg.Backend)
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "Config: %s", cfg.ConfigFile)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	// Fail fast if the external tools are missing.
	if err := check.CheckDeps(cfg); err != nil {
		return err
	}

	// Cancel on SIGINT/SIGTERM so the pipeline stops between tool calls.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current tool exits…")
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := pipeline.Run(ctx, cfg, log, newRunner(cfg)); err != nil {
		return err
	}
	if !cfg.DryRun {
		pipeline.Report(cmd.OutOrStdout(), cfg)
	}
	return nil
}

func newRunner(cfg *config.Config) tool.Runner {
	if cfg.Backend == config.BackendNative {
		return raster.NewRunner(cfg)
	}
	return tool.ExecRunner{}
}

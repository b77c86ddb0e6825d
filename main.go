package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/misakazip/h265-converter/internal/config"
	"github.com/misakazip/h265-converter/internal/discover"
	"github.com/misakazip/h265-converter/internal/dispatcher"
	"github.com/misakazip/h265-converter/internal/display"
	"github.com/misakazip/h265-converter/internal/encoder"
	"github.com/misakazip/h265-converter/internal/logging"
	"github.com/misakazip/h265-converter/internal/metrics"
	"github.com/misakazip/h265-converter/internal/planner"
	"github.com/misakazip/h265-converter/internal/update"
	"github.com/misakazip/h265-converter/internal/workers"
)

// Build-time variables (injected via -ldflags)
var (
	Version = "dev"
	Commit  = "unknown"
)

const exitInterrupted = 130

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, dispatcher.ErrInterrupted) {
			os.Exit(exitInterrupted)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config
	var doUpdate, showVersion bool

	cmd := &cobra.Command{
		Use:   "h265-converter [input-dir]",
		Short: "Batch-convert videos to H.265/HEVC using ffmpeg",
		Long: `h265-converter walks an input directory tree, finds video files, and
re-encodes each one to H.265/HEVC with ffmpeg, running a bounded number of
encoder processes in parallel. Files whose output already exists are
skipped, so re-running over the same directories only converts what is new.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("h265-converter %s (%s, %s)\n", Version, Commit, runtime.Version())
				return nil
			}
			if doUpdate {
				return update.Run()
			}

			cfg.InputDir = config.DefaultInputDir
			if len(args) == 1 {
				cfg.InputDir = args[0]
			}

			return run(cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.JobLimit, "jobs", "j", workers.DefaultJobLimit(), "maximum number of concurrent ffmpeg processes")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", config.DefaultOutputDir, "directory for encoded files")
	cmd.Flags().IntVarP(&cfg.Quality, "quality", "q", config.DefaultQuality, "CRF quality value (lower is better, 0-51)")
	cmd.Flags().StringVarP(&cfg.Preset, "preset", "p", config.DefaultPreset, "x265 encoder preset")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&cfg.KillOnInterrupt, "kill-on-interrupt", false, "abort in-flight encodes on Ctrl-C instead of letting them finish")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090) for the run")
	cmd.Flags().BoolVar(&doUpdate, "update", false, "download the latest release and replace this binary")
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version information and exit")

	return cmd
}

// run drives one batch: discover -> plan -> dispatch -> summary.
func run(cfg config.Config) error {
	start := time.Now()
	logging.SetVerbose(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		logging.Error("Configuration error: %v", err)
		return err
	}

	enc := encoder.New()
	enc.KillOnInterrupt = cfg.KillOnInterrupt
	if err := enc.Check(); err != nil {
		logging.Error("%v", err)
		return err
	}

	metrics.Initialize(Version, runtime.Version())
	if srv := metrics.Serve(cfg.MetricsAddr); srv != nil {
		defer srv.Close()
	}

	files, err := discover.Scan(cfg.InputDir)
	if err != nil {
		logging.Error("Discovery failed: %v", err)
		return err
	}
	metrics.FilesDiscovered.Set(float64(len(files)))
	logging.Info("Found %d video file(s) in %s", len(files), cfg.InputDir)

	if len(files) == 0 {
		logging.Info("Nothing to do")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logging.Error("Cannot create output directory: %v", err)
		return err
	}

	plan := planner.Build(files, cfg.OutputDir, cfg.EncodeOptions())
	metrics.JobsSkipped.Set(float64(len(plan.Skipped)))

	if len(plan.Jobs) == 0 {
		logging.Info("All %d file(s) already converted in %s", len(plan.Skipped), cfg.OutputDir)
		return nil
	}
	logging.Info("Encoding %d file(s) with %d parallel job(s) (crf %d, preset %s)",
		len(plan.Jobs), cfg.JobLimit, cfg.Quality, cfg.Preset)

	// A termination signal stops the submission of new jobs; in-flight
	// encodes finish unless --kill-on-interrupt was given.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := dispatcher.New(enc, cfg.JobLimit)

	if display.IsInteractive() {
		var finished atomic.Int64
		total := len(plan.Jobs)
		d.OnResult = func(r encoder.Result) {
			n := int(finished.Add(1))
			if r.Failed() {
				fmt.Printf("%s failed   %s\n", display.Progress(n, total), r.Job.Input)
			} else {
				fmt.Printf("%s finished %s (%s)\n", display.Progress(n, total), r.Job.Output, display.FormatDuration(r.Elapsed))
			}
		}
	}

	stats, runErr := d.Run(ctx, plan.Jobs)

	logging.Info("Done in %s: %d encoded, %d failed, %d skipped -> %s",
		display.FormatDuration(time.Since(start)), stats.Completed, stats.Failed, len(plan.Skipped), cfg.OutputDir)

	if runErr != nil {
		logging.Warn("Run did not complete: %v", runErr)
		return runErr
	}
	return nil
}

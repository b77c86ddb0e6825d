package config

import (
	"fmt"
	"path/filepath"

	"github.com/misakazip/h265-converter/internal/planner"
)

// Defaults for flag values. The input and output directories are relative
// to the working directory so the tool can be dropped into a media folder
// and run without arguments.
const (
	DefaultInputDir  = "./videos"
	DefaultOutputDir = "./converted"
	DefaultQuality   = 28
	DefaultPreset    = "medium"
)

// validPresets are the x265 preset names accepted by --preset.
var validPresets = map[string]bool{
	"ultrafast": true,
	"superfast": true,
	"veryfast":  true,
	"faster":    true,
	"fast":      true,
	"medium":    true,
	"slow":      true,
	"slower":    true,
	"veryslow":  true,
	"placebo":   true,
}

// Config is the immutable configuration for one batch run, constructed
// once from flags and passed by value into the pipeline. There are no
// process-wide mutable settings.
type Config struct {
	// InputDir is the directory scanned for video files.
	InputDir string
	// OutputDir receives the encoded files.
	OutputDir string
	// JobLimit is the maximum number of concurrent encode processes.
	JobLimit int
	// Quality is the CRF value handed to the encoder.
	Quality int
	// Preset is the x265 speed/efficiency preset.
	Preset string
	// Verbose enables debug logging.
	Verbose bool
	// KillOnInterrupt aborts in-flight encodes on a termination signal
	// instead of letting them finish.
	KillOnInterrupt bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on that
	// address for the duration of the run.
	MetricsAddr string
}

// Validate checks all configuration values before any work starts.
func (c *Config) Validate() error {
	if c.JobLimit < 1 {
		return fmt.Errorf("job limit must be at least 1, got %d", c.JobLimit)
	}
	if c.Quality < 0 {
		return fmt.Errorf("quality must be non-negative, got %d", c.Quality)
	}
	if c.Quality > 51 {
		return fmt.Errorf("quality must be at most 51 (CRF range), got %d", c.Quality)
	}
	if !validPresets[c.Preset] {
		return fmt.Errorf("unknown preset %q", c.Preset)
	}
	if c.InputDir == "" {
		return fmt.Errorf("input directory must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	// Encoding a tree into itself would rediscover fresh outputs on the
	// next run and, with a non-mp4 input, could double-process files.
	inAbs, err := filepath.Abs(c.InputDir)
	if err != nil {
		return fmt.Errorf("resolve input directory: %w", err)
	}
	outAbs, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if inAbs == outAbs {
		return fmt.Errorf("input and output directories must differ (%s)", inAbs)
	}

	return nil
}

// EncodeOptions returns the per-job encoder settings carried by every Job.
func (c *Config) EncodeOptions() planner.EncodeOptions {
	return planner.EncodeOptions{
		Quality:  c.Quality,
		Preset:   c.Preset,
		JobLimit: c.JobLimit,
	}
}

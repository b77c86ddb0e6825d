package planner

import (
	"os"
	"path/filepath"

	"github.com/misakazip/h265-converter/internal/logging"
	"github.com/misakazip/h265-converter/internal/mediatypes"
)

// EncodeOptions holds the per-run encoder settings. Read-only for the
// lifetime of a run.
type EncodeOptions struct {
	// Quality is the CRF value passed to the encoder (lower is better).
	Quality int
	// Preset is the encoder speed/efficiency preset.
	Preset string
	// JobLimit is the maximum number of concurrent encode processes.
	JobLimit int
}

// Job is one unit of work: transcode one input file to one output file.
// Immutable once created.
type Job struct {
	Input   string
	Output  string
	Options EncodeOptions
}

// Plan is the result of output planning over the discovered files.
type Plan struct {
	// Jobs are the files that still need encoding, in discovery order.
	Jobs []Job
	// Skipped are input paths whose output already exists.
	Skipped []string
}

// Build derives an output path for each input file (same base name, fixed
// output extension, flat under outputDir) and filters out inputs whose
// output already exists. When two inputs map to the same output name, only
// the first becomes a job; later ones are reported and dropped so two
// encodes never race on one destination.
func Build(files []string, outputDir string, opts EncodeOptions) Plan {
	var plan Plan
	claimed := make(map[string]string, len(files))

	for _, input := range files {
		output := filepath.Join(outputDir, mediatypes.OutputName(filepath.Base(input)))

		if prev, ok := claimed[output]; ok {
			logging.Warn("Output name collision: %s and %s both map to %s, skipping the latter", prev, input, output)
			plan.Skipped = append(plan.Skipped, input)
			continue
		}

		if _, err := os.Stat(output); err == nil {
			logging.Info("%s already exists, skipping %s", output, input)
			plan.Skipped = append(plan.Skipped, input)
			continue
		}

		claimed[output] = input
		plan.Jobs = append(plan.Jobs, Job{
			Input:   input,
			Output:  output,
			Options: opts,
		})
	}

	return plan
}

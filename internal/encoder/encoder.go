package encoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/misakazip/h265-converter/internal/planner"
)

// DefaultBinary is the encoder executable looked up on PATH.
const DefaultBinary = "ffmpeg"

// stderrTailLines bounds how much encoder output is surfaced on failure.
const stderrTailLines = 20

// Encoder invokes the external ffmpeg binary for single encode jobs.
type Encoder struct {
	// Binary is the encoder executable. Overridable for tests.
	Binary string
	// KillOnInterrupt binds encode processes to the run context so they
	// are terminated on cancellation. The default (false) lets in-flight
	// encodes run to completion, leaving no half-killed child processes.
	KillOnInterrupt bool
}

// Result is the outcome of one encode invocation.
type Result struct {
	Job      planner.Job
	ExitCode int
	Stderr   string
	Elapsed  time.Duration
	Err      error
}

// Failed reports whether the encode ended in an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// New returns an Encoder using the default binary and interrupt policy.
func New() *Encoder {
	return &Encoder{Binary: DefaultBinary}
}

// Check verifies the encoder binary is available, returning an error with a
// remediation hint when it is not. Called before any work starts.
func (e *Encoder) Check() error {
	if _, err := exec.LookPath(e.Binary); err != nil {
		return fmt.Errorf("%s not found in PATH (install ffmpeg, e.g. 'apt install ffmpeg' or 'brew install ffmpeg'): %w", e.Binary, err)
	}
	return nil
}

// BuildArgs constructs the ffmpeg argument list for one job: H.265 video at
// the configured CRF and preset, audio copied unmodified, hvc1 tag for
// Apple/browser compatibility. -n refuses to overwrite so a concurrent run
// cannot clobber a finished output.
func (e *Encoder) BuildArgs(job planner.Job) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", job.Input,
		"-c:v", "libx265",
		"-crf", strconv.Itoa(job.Options.Quality),
		"-preset", job.Options.Preset,
		"-c:a", "copy",
		"-tag:v", "hvc1",
		"-n",
		job.Output,
	}
}

// Encode runs the external encoder for one job and blocks until it exits.
// The command's stderr is captured and surfaced as-is; it is never parsed.
func (e *Encoder) Encode(ctx context.Context, job planner.Job) Result {
	args := e.BuildArgs(job)

	var cmd *exec.Cmd
	if e.KillOnInterrupt {
		cmd = exec.CommandContext(ctx, e.Binary, args...)
	} else {
		// Deliberately detached from ctx: cancellation stops new jobs, not
		// encodes that are already running.
		cmd = exec.Command(e.Binary, args...)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := Result{
		Job:     job,
		Stderr:  tail(stderr.String(), stderrTailLines),
		Elapsed: elapsed,
	}

	if err != nil {
		result.Err = err
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	return result
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

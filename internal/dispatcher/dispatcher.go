package dispatcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/misakazip/h265-converter/internal/encoder"
	"github.com/misakazip/h265-converter/internal/logging"
	"github.com/misakazip/h265-converter/internal/metrics"
	"github.com/misakazip/h265-converter/internal/planner"
)

// ErrInterrupted is returned by Run when a cancellation arrived before
// every job could be submitted. In-flight jobs have still been allowed to
// finish by the time Run returns.
var ErrInterrupted = errors.New("run interrupted before all jobs finished")

// Runner runs one encode job to completion. Satisfied by *encoder.Encoder.
type Runner interface {
	Encode(ctx context.Context, job planner.Job) encoder.Result
}

// Stats summarizes a finished (or drained) batch run.
type Stats struct {
	// Submitted is how many jobs were actually started.
	Submitted int
	// Completed is how many submitted jobs succeeded.
	Completed int
	// Failed is how many submitted jobs exited non-zero.
	Failed int
	// Interrupted is true when cancellation stopped submission early.
	Interrupted bool
}

// Dispatcher runs encode jobs with a fixed concurrency bound.
//
// A buffered channel acts as a counting semaphore holding JobLimit permits:
// the single submission loop acquires a permit before starting each job and
// every job goroutine releases its permit when the encode finishes, in
// whatever order completions happen to arrive. A WaitGroup joins all
// in-flight jobs before Run returns, so callers always observe one result
// per submitted job.
type Dispatcher struct {
	runner Runner
	limit  int

	// OnResult, when set, is invoked once per finished job from the job's
	// own goroutine. Used by tests and progress reporting.
	OnResult func(encoder.Result)
}

// New creates a Dispatcher running at most limit jobs concurrently.
// Limits below 1 are treated as 1.
func New(runner Runner, limit int) *Dispatcher {
	if limit < 1 {
		limit = 1
	}
	return &Dispatcher{runner: runner, limit: limit}
}

// Run executes all jobs and blocks until every started job has produced a
// result. Cancelling ctx stops the submission of new jobs; jobs already
// running are not aborted (unless the encoder itself was configured to
// kill on interrupt). A per-job failure is reported and counted but never
// stops the batch.
func (d *Dispatcher) Run(ctx context.Context, jobs []planner.Job) (Stats, error) {
	var stats Stats
	var completed, failed atomic.Int64

	sem := make(chan struct{}, d.limit)
	var wg sync.WaitGroup

	metrics.BatchRunning.Set(1)
	defer metrics.BatchRunning.Set(0)

submission:
	for i, job := range jobs {
		// Check for cancellation both before and while waiting for a
		// permit, so a signal during a full pipeline still drains promptly.
		select {
		case <-ctx.Done():
			break submission
		default:
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break submission
		}

		stats.Submitted++
		wg.Add(1)
		metrics.JobsInFlight.Inc()
		logging.Debug("Starting job %d/%d: %s", i+1, len(jobs), job.Input)

		go func(job planner.Job) {
			defer func() {
				metrics.JobsInFlight.Dec()
				<-sem
				wg.Done()
			}()

			result := d.runner.Encode(ctx, job)
			metrics.EncodeDuration.Observe(result.Elapsed.Seconds())

			if result.Failed() {
				failed.Add(1)
				metrics.JobsTotal.WithLabelValues("error").Inc()
				logging.Error("Encode failed: %s (exit status %d)", job.Input, result.ExitCode)
				if result.Stderr != "" {
					logging.Error("Encoder output:\n%s", result.Stderr)
				}
			} else {
				completed.Add(1)
				metrics.JobsTotal.WithLabelValues("success").Inc()
				logging.Info("Encoded %s -> %s in %s", job.Input, job.Output, result.Elapsed.Round(time.Millisecond))
			}

			if d.OnResult != nil {
				d.OnResult(result)
			}
		}(job)
	}

	if stats.Submitted < len(jobs) {
		stats.Interrupted = true
		logging.Warn("Interrupted: %d of %d jobs not started, waiting for in-flight encodes to finish", len(jobs)-stats.Submitted, len(jobs))
	}

	wg.Wait()

	stats.Completed = int(completed.Load())
	stats.Failed = int(failed.Load())

	// A cancellation that lands after the last job was submitted still cut
	// the run short: the caller asked to stop and must not see a clean exit.
	if ctx.Err() != nil {
		stats.Interrupted = true
	}

	if stats.Interrupted {
		return stats, ErrInterrupted
	}
	return stats, nil
}

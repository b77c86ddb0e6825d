// Package dispatcher runs encode jobs under a fixed concurrency bound.
//
// Submission is single-threaded; each started job runs the external
// encoder in its own goroutine. A counting semaphore caps the number of
// simultaneous encoder processes and a WaitGroup guarantees the run only
// completes after every submitted job has reported a result.
//
// The run moves through three phases: running (submitting new jobs up to
// the bound), draining (cancellation received: no new jobs, in-flight jobs
// finish naturally), and terminated. A failed encode never aborts its
// siblings; failures are counted and reported per job.
package dispatcher

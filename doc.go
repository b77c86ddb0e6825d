// Package main provides the entry point for the h265-converter command.
//
// h265-converter is a batch video transcoder. It walks an input directory
// tree, collects every recognized video file, and re-encodes each one to
// H.265/HEVC by running ffmpeg as a child process, with a bounded number of
// encodes running in parallel.
//
// # Run Lifecycle
//
// A run follows a fixed sequence:
//
//  1. Configuration: Parses flags, applies defaults, and validates values
//  2. Preconditions: Verifies ffmpeg is on PATH and the input directory exists
//  3. Discovery: Walks the input tree and collects video files
//  4. Planning: Derives output paths and skips files already converted
//  5. Dispatch: Runs encode jobs under the concurrency limit until done
//  6. Summary: Reports encoded, failed, and skipped counts
//
// # Interruption
//
// SIGINT and SIGTERM stop the submission of new jobs. Encodes already
// running are allowed to finish so no partially written output is left
// behind, unless --kill-on-interrupt is given, in which case in-flight
// ffmpeg processes are terminated immediately. An interrupted run exits
// with status 130.
//
// # Observability
//
// With --metrics-addr the process serves Prometheus metrics for the
// duration of the run: files discovered, jobs skipped, jobs in flight,
// encode outcomes, and encode durations.
package main

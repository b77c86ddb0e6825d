// Package workers chooses a default encode concurrency for the host.
//
// The calculation uses runtime.GOMAXPROCS rather than runtime.NumCPU so
// container CPU limits are respected (Go 1.19+ sets GOMAXPROCS from cgroup
// constraints). Operators can override the result with the ENCODE_JOBS
// environment variable.
package workers

package workers

import (
	"os"
	"runtime"
	"strconv"
)

// MaxDefaultJobs caps the automatically chosen job limit. Each ffmpeg
// process is itself multi-threaded, so running one encode per core already
// oversubscribes the machine; going past this cap mostly adds memory
// pressure.
const MaxDefaultJobs = 8

// DefaultJobLimit returns the encode job limit used when --jobs is not
// given. It respects container CPU limits via GOMAXPROCS (Go 1.19+) and can
// be overridden with the ENCODE_JOBS environment variable.
func DefaultJobLimit() int {
	if override := os.Getenv("ENCODE_JOBS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if count > MaxDefaultJobs {
				return MaxDefaultJobs
			}
			return count
		}
	}

	// One encode per two available CPUs; ffmpeg spreads each encode across
	// several threads on its own.
	available := runtime.GOMAXPROCS(0)
	jobs := available / 2

	if jobs < 1 {
		jobs = 1
	}
	if jobs > MaxDefaultJobs {
		jobs = MaxDefaultJobs
	}

	return jobs
}

package display

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal. Piped or
// redirected runs get plain log output with no progress lines.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, ...).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDuration renders an elapsed time compactly: "42s", "3m05s", "1h12m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Progress returns a "[n/total]" prefix for per-job progress lines.
func Progress(n, total int) string {
	return fmt.Sprintf("[%d/%d]", n, total)
}

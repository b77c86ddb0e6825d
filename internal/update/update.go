package update

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/misakazip/h265-converter/internal/logging"
)

// releaseURL is the download location pattern for released binaries.
const releaseURL = "https://github.com/misakazip/h265-converter/releases/latest/download/h265-converter-%s-%s"

// httpTimeout bounds the whole download.
const httpTimeout = 5 * time.Minute

// Run downloads the latest released binary for this platform and replaces
// the current executable with it. The download goes to a temporary file in
// the executable's directory first so the final swap is a single rename.
func Run() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate current executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	url := fmt.Sprintf(releaseURL, runtime.GOOS, runtime.GOARCH)
	logging.Info("Downloading latest release from %s", url)

	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: unexpected status %s", resp.Status)
	}

	return replaceExecutable(exe, resp.Body)
}

// replaceExecutable writes the new binary next to the current one and
// renames it into place. Rename within one directory stays on one
// filesystem, so the swap is atomic on POSIX systems.
func replaceExecutable(exe string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(exe), filepath.Base(exe)+".new-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write new binary: %w", err)
	}
	if written == 0 {
		os.Remove(tmpPath)
		return fmt.Errorf("downloaded binary is empty")
	}

	if err := os.Chmod(tmpPath, 0o755); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("mark new binary executable: %w", err)
	}

	if err := os.Rename(tmpPath, exe); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace executable: %w", err)
	}

	logging.Info("Updated %s (%d bytes)", exe, written)
	return nil
}

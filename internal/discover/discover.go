package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/misakazip/h265-converter/internal/logging"
	"github.com/misakazip/h265-converter/internal/mediatypes"
)

// Scan walks inputDir recursively and returns the paths of all recognized
// video files, sorted lexicographically for a deterministic submission
// order. Hidden files are ignored and hidden directories are pruned
// entirely, at any nesting depth.
func Scan(inputDir string) ([]string, error) {
	if _, err := os.Stat(inputDir); err != nil {
		return nil, fmt.Errorf("input directory %s: %w", inputDir, err)
	}

	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("Error accessing %s: %v", path, err)
			return nil // keep walking
		}

		if mediatypes.IsHidden(d.Name()) && path != inputDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if mediatypes.IsVideoFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

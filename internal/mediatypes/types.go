package mediatypes

import (
	"path/filepath"
	"strings"
)

// OutputExtension is the container extension used for every encoded file,
// regardless of the input container.
const OutputExtension = ".mp4"

// VideoExtensions maps lowercase file extensions to whether they are
// recognized video formats eligible for conversion.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".avi":  true,
	".flv":  true,
	".m4v":  true,
	".webm": true,
	".wmv":  true,
	".mpg":  true,
	".mpeg": true,
	".ts":   true,
}

// IsVideoFile reports whether the file name has a recognized video
// extension. Matching is case-insensitive.
func IsVideoFile(name string) bool {
	return VideoExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsHidden reports whether the file or directory name is hidden
// (starts with a dot).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// OutputName returns the output file name for an input file name: the same
// base name with the fixed output extension.
func OutputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + OutputExtension
}

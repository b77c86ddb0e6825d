// Package config holds the immutable per-run configuration and its
// validation rules. Configuration errors are detected before any job runs.
package config

// Package update implements the --update flag: it downloads the latest
// released binary for the current platform and swaps it over the running
// executable.
package update

// Package display provides human-facing output helpers: size and duration
// formatting for the batch summary and terminal detection for progress
// output.
package display

// Package logging provides leveled logging for the converter.
//
// The level is selected from the environment (DEBUG=1 or LOG_LEVEL) and can
// be lowered to debug at runtime by the --verbose flag. Output goes through
// the standard log package so timestamps and destinations stay consistent
// across the application.
package logging

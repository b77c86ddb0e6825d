// Package encoder shells out to ffmpeg for H.265/HEVC encoding.
//
// The command is treated as opaque: exit status 0 means success, anything
// else is a failure, and stderr text is surfaced to the user without being
// parsed. ffmpeg must be installed and available in the system PATH.
package encoder

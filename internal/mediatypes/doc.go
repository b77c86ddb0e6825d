// Package mediatypes defines which file extensions the converter treats as
// video inputs and the fixed container extension used for outputs.
package mediatypes

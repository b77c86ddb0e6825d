// Package discover finds candidate video files under an input directory.
//
// Discovery is recursive, skips hidden files and directories, and matches
// extensions case-insensitively against the recognized video set. Results
// are sorted so repeated runs submit jobs in the same order.
package discover

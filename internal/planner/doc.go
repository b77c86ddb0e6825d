// Package planner turns discovered input files into encode jobs.
//
// For each candidate it derives the destination path under the output
// directory and applies the skip-if-exists rule: an existing output file
// marks the job as already done, which makes repeated runs over the same
// directories idempotent. The dispatcher never re-checks this.
package planner

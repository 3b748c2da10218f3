// Package batch answers a directory of intake documents against one criteria
// corpus in a single run.
//
// This package supports concurrent processing of intake files over a worker
// pool, progress tracking, and retry logic with exponential backoff around
// the model-backed stages. Every run carries a fresh UUID; the case records
// written for its files share that run ID, so one batch can be pulled back
// out of the case log as a unit.
package batch

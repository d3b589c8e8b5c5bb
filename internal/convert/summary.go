// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// ErrorKind classifies per-task failures for the summary report.
type ErrorKind string

const (
	// ReadError means the source file could not be read.
	ReadError ErrorKind = "read"
	// WriteError means the destination could not be written.
	WriteError ErrorKind = "write"
)

// Failure records one task that could not be completed, with the reason.
type Failure struct {
	Path string
	Kind ErrorKind
	Err  error
}

// Summary holds the outcome of a batch conversion run.
type Summary struct {
	Converted int
	Copied    int
	Skipped   int
	Failed    int
	Aborted   bool
	Failures  []Failure
}

// Total returns the number of tasks processed.
func (s Summary) Total() int {
	return s.Converted + s.Copied + s.Skipped + s.Failed
}

// HasFailures reports whether any task failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

func (s *Summary) fail(path string, kind ErrorKind, err error) {
	s.Failed++
	s.Failures = append(s.Failures, Failure{Path: path, Kind: kind, Err: err})
}

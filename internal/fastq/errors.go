package fastq

import "errors"

var (
	// ErrTruncated is returned when the input ends in the middle of a
	// 4-line record group.
	ErrTruncated = errors.New("truncated fastq record")

	// ErrNotFound is returned by record lookups with an unknown id.
	ErrNotFound = errors.New("sequence id not found")
)

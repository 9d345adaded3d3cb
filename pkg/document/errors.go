package document

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned for empty paths or empty segments.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotContainer is returned when a segment descends into a scalar.
	ErrNotContainer = errors.New("not a mapping or sequence")
	// ErrNotSequence is returned when appending to a non-empty mapping.
	ErrNotSequence = errors.New("not a sequence")
	// ErrNotIndex is returned when a non-numeric segment addresses a sequence.
	ErrNotIndex = errors.New("segment is not a sequence index")
	// ErrIndexOutOfRange is returned when a sequence index skips past the end.
	ErrIndexOutOfRange = errors.New("sequence index out of range")
	// ErrAppendNotLast is returned when "[]" is not the final segment.
	ErrAppendNotLast = errors.New("[] must only be the last segment of the path")
	// ErrSearchNotAllowed is returned when Set receives a "[value]" segment.
	ErrSearchNotAllowed = errors.New("[value] segments are only valid for has and unset")
	// ErrNotFound is returned by Unset when the addressed entry does not exist.
	ErrNotFound = errors.New("path not found")
)

// PathError records a failed document operation and the segment that caused it.
type PathError struct {
	Op      string
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %q at segment %q: %v", e.Op, e.Path, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

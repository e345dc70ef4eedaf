package tweets

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions the classifier reports.
var (
	// ErrResourceUnavailable is returned when an input cannot be opened or an
	// output cannot be created.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrMalformedRecord is returned when a line does not split into the
	// expected number of fields.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrIndexOutOfRange is returned for out-of-bounds TextValue access.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDivisionUndefined marks an accuracy computed over zero predictions.
	ErrDivisionUndefined = errors.New("accuracy undefined: no predictions")
)

// ResourceError describes a file that could not be opened or created.
type ResourceError struct {
	Op   string // "open" or "create"
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// MalformedRecordError describes a line with too few fields.
type MalformedRecordError struct {
	Line int
	Want int
	Got  int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// IndexError is returned by TextValue.At for a position at or past the end.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

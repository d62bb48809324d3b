package types

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	// ErrNoTag reports that the source does not start with a supported ID3 tag.
	ErrNoTag = errors.New("no ID3v2.3 tag")

	// ErrTruncated reports that the source ended before a declared length was satisfied.
	ErrTruncated = errors.New("truncated")

	// ErrUnsupportedFrame is returned by the fallback decoder path for frame
	// identifiers no registered decoder claims.
	ErrUnsupportedFrame = errors.New("unsupported frame")

	// ErrFrameTooShort is returned when a frame's content is shorter than its
	// decoder's minimum.
	ErrFrameTooShort = errors.New("frame content too short")

	// ErrNestingTooDeep is returned for an embedded frame nested deeper than
	// the registry decodes.
	ErrNestingTooDeep = errors.New("frames nested too deep")
)

// NoTagError is returned when the source carries no tag this package can read.
//
// Both a missing "ID3" marker and a major version other than 3 produce it.
type NoTagError struct {
	Reason string
}

func (e *NoTagError) Error() string {
	return fmt.Sprintf("no tag: %s", e.Reason)
}

// Is makes errors.Is(err, ErrNoTag) report true.
func (e *NoTagError) Is(target error) bool {
	return target == ErrNoTag
}

// TruncatedError is returned when a bounded read came up short.
type TruncatedError struct {
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated %s at offset %d: want %d bytes, got %d",
		e.What, e.Offset, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrTruncated) report true.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// CorruptedTagError is returned when header fields are structurally impossible.
type CorruptedTagError struct {
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	return fmt.Sprintf("corrupted tag at offset %d: %s", e.Offset, e.Reason)
}

// FrameError wraps a decoder rejection with the frame identifier.
type FrameError struct {
	ID  string
	Err error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %s: %v", e.ID, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered while reading a tag.
//
// A truncated tag body is reported as a warning: the frames split before the
// short read are still returned.
type Warning struct {
	// Stage where the warning occurred: "header", "body".
	Stage string

	Message string

	// Offset from the start of the tag (0 if not applicable).
	Offset int64

	// Err is the underlying error, if any.
	Err error
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

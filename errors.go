package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// Sentinel errors. Match them with errors.Is.
var (
	ErrNoTag            = types.ErrNoTag
	ErrTruncated        = types.ErrTruncated
	ErrUnsupportedFrame = types.ErrUnsupportedFrame
	ErrFrameTooShort    = types.ErrFrameTooShort
	ErrNestingTooDeep   = types.ErrNestingTooDeep
)

// NoTagError reports a source that does not start with an ID3v2.3 tag.
type NoTagError = types.NoTagError

// TruncatedError reports a read that came up short.
type TruncatedError = types.TruncatedError

// CorruptedTagError reports header values that cannot describe a valid tag.
type CorruptedTagError = types.CorruptedTagError

// FrameError wraps the reason a frame could not be decoded.
type FrameError = types.FrameError

// Warning is a non-fatal issue encountered while reading a tag.
type Warning = types.Warning

package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// Tag is a decoded tag header with the raw frames of its body.
type Tag = types.Tag

// Header is the decoded tag header.
type Header = types.Header

// TagVersion is the version stored in the tag header.
type TagVersion = types.Version

// RawFrame is an undecoded frame.
type RawFrame = types.RawFrame

// Frame is a decoded frame. It is one of TextInformation, Comment,
// AttachedPicture or Chapter; switch on the concrete type or on Kind.
type Frame = types.Frame

// Kind names a Frame variant.
type Kind = types.Kind

// Frame kinds.
const (
	KindTextInformation = types.KindTextInformation
	KindComment         = types.KindComment
	KindAttachedPicture = types.KindAttachedPicture
	KindChapter         = types.KindChapter
	KindUnrecognized    = types.KindUnrecognized
)

// Frame variants.
type (
	TextInformation = types.TextInformation
	Comment         = types.Comment
	AttachedPicture = types.AttachedPicture
	Chapter         = types.Chapter
	Unrecognized    = types.Unrecognized
)

// PictureType categorizes an attached picture.
type PictureType = types.PictureType

// Frames is an ordered, read-only collection of decoded frames.
type Frames = types.Frames

// NewFrames creates a collection holding frames in the given order.
func NewFrames(frames ...Frame) Frames {
	return types.NewFrames(frames...)
}

// OfKind returns a Frames.Filter predicate matching one variant.
func OfKind(k Kind) func(Frame) bool {
	return types.OfKind(k)
}

// FramesOf returns the frames of variant T in collection order.
//
// Example:
//
//	for _, ch := range id3meta.FramesOf[id3meta.Chapter](frames) {
//		fmt.Println(ch.StartTime, ch.EndTime)
//	}
func FramesOf[T Frame](fs Frames) []T {
	return types.OfType[T](fs)
}

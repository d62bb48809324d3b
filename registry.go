package id3meta

import (
	"github.com/simonhull/id3meta/internal/frames"
	"github.com/simonhull/id3meta/internal/registry"
)

// Decoder interprets raw frames of one frame family.
// Implement it to teach a Registry about frames this package does not decode.
type Decoder = registry.Decoder

// Dispatcher decodes a raw frame with whichever decoder supports it.
// Decoders of frames that embed other frames receive one.
type Dispatcher = registry.Dispatcher

// Registry is an ordered, immutable table of decoders: the first decoder
// supporting a frame id decodes it. A Registry is safe for concurrent use.
type Registry = registry.Registry

// The built-in decoders, exported so custom registries can reuse them.
type (
	TextDecoder    = frames.TextDecoder
	CommentDecoder = frames.CommentDecoder
	PictureDecoder = frames.PictureDecoder
	ChapterDecoder = frames.ChapterDecoder
)

var defaultRegistry = registry.New(frames.Default()...)

// DefaultRegistry returns the registry used when no WithRegistry option is
// given. It decodes CHAP, the text information frames, COMM and APIC, in
// that order.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates a registry trying decoders in the given order.
//
// Example:
//
//	reg := id3meta.NewRegistry(id3meta.TextDecoder{}, id3meta.CommentDecoder{})
func NewRegistry(decoders ...Decoder) *Registry {
	return registry.New(decoders...)
}

// TextFrameIDs returns the frame ids decoded as text information.
func TextFrameIDs() []string {
	return append([]string(nil), frames.TextIDs...)
}

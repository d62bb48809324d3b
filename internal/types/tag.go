// Package types provides the core data structures of an ID3v2.3 tag.
//
// This package defines the Header, RawFrame and Tag produced by reading a
// tag, the Frame sum type produced by decoding raw frames, and the Frames
// collection that holds decoded frames.
package types

import (
	"fmt"
)

// Version is the tag version as stored in the header: ID3v2.<Major>.<Minor>.
type Version struct {
	Major byte
	Minor byte
}

func (v Version) String() string {
	return fmt.Sprintf("major: %d, minor: %d", v.Major, v.Minor)
}

// Header is the decoded fixed 10-byte tag header.
type Header struct {
	Version Version

	// Flags is the raw header flags byte.
	Flags byte

	// BodySize is the declared size of the tag body, excluding the 10-byte header.
	BodySize uint32

	// ExtendedHeader reports whether the extended header flag was set.
	ExtendedHeader bool

	// ExtendedSize is the declared size of the extended header (0 if absent).
	ExtendedSize uint32
}

// RawFrame is an undecoded frame as split from the tag body.
//
// Content always holds exactly Size bytes.
type RawFrame struct {
	ID      string
	Size    uint32
	Flags   [2]byte
	Content []byte
}

func (f RawFrame) String() string {
	return fmt.Sprintf("id: %s, size: %d, content: %v, flags: %v", f.ID, f.Size, f.Content, f.Flags[:])
}

// Tag pairs a header with the raw frames split from its body.
//
// A Tag is immutable once returned; decode its frames with the registry.
//
//	tag, err := id3meta.ReadFile("song.mp3")
//	if errors.Is(err, id3meta.ErrNoTag) {
//		return nil
//	}
//	frames := id3meta.Extract(tag.Frames)
type Tag struct {
	Header Header

	// Frames in the order they appear in the body.
	Frames []RawFrame

	// Warnings encountered while reading (non-fatal issues).
	Warnings []Warning
}

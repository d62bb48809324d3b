// Package id3v2 locates an ID3v2.3 tag at the start of a byte source and
// splits its body into raw frames.
package id3v2

import (
	"errors"
	"fmt"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// Marker is the magic that opens every ID3v2 tag.
const Marker = "ID3"

// HeaderSize is the fixed size of the tag header.
const HeaderSize = 10

// SupportedMajor is the only major version this package decodes.
const SupportedMajor = 3

// FlagExtendedHeader marks a tag whose header is followed by an extended header.
const FlagExtendedHeader = 0x40

// ReadHeader decodes the tag header and skips the extended header when the
// flags announce one. On success r is positioned at the first frame.
//
// A source that does not start with the marker, or that carries a major
// version other than 3, yields a *types.NoTagError. A source that ends
// inside the header after the marker yields a *types.TruncatedError.
func ReadHeader(r *binary.Reader) (types.Header, error) {
	var h types.Header

	marker, err := r.ReadFull(len(Marker), "tag marker")
	if err != nil {
		if errors.Is(err, types.ErrTruncated) {
			return h, &types.NoTagError{Reason: "source is shorter than the ID3 marker"}
		}
		return h, err
	}
	if string(marker) != Marker {
		return h, &types.NoTagError{Reason: fmt.Sprintf("missing ID3 marker (found %q)", marker)}
	}

	version, err := r.ReadFull(2, "tag version")
	if err != nil {
		return h, err
	}
	h.Version = types.Version{Major: version[0], Minor: version[1]}
	if h.Version.Major != SupportedMajor {
		return h, &types.NoTagError{Reason: fmt.Sprintf("unsupported version 2.%d.%d", h.Version.Major, h.Version.Minor)}
	}

	buf, err := r.ReadFull(HeaderSize-len(Marker)-2, "tag header")
	if err != nil {
		return h, err
	}
	h.Flags = buf[0]
	h.BodySize = binary.Synchsafe(buf[1:5])

	if h.Flags&FlagExtendedHeader == 0 {
		return h, nil
	}

	sizeBuf, err := r.ReadFull(4, "extended header size")
	if err != nil {
		return h, err
	}
	ext := binary.Synchsafe(sizeBuf)
	if ext < 4 || ext > h.BodySize {
		return h, &types.CorruptedTagError{
			Reason: fmt.Sprintf("extended header size %d outside 4..%d", ext, h.BodySize),
			Offset: r.Offset() - 4,
		}
	}
	if err := r.Skip(int64(ext-4), "extended header"); err != nil {
		return h, err
	}

	h.ExtendedHeader = true
	h.ExtendedSize = ext
	return h, nil
}

// FramesSize returns the number of body bytes that hold frames and padding.
func FramesSize(h types.Header) uint32 {
	return h.BodySize - h.ExtendedSize
}

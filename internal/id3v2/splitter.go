package id3v2

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// FrameHeaderSize is the size of a frame header: id, size and flags.
const FrameHeaderSize = 10

// Split divides a tag body into raw frames in body order.
//
// Splitting stops at the end of body, at a frame declaring size 0, or when
// only zero padding remains. If a frame header or its content runs past the
// end of body, the frames split so far are returned with a
// *types.TruncatedError whose offset is relative to the start of body.
//
// Frame contents alias body.
func Split(body []byte) ([]types.RawFrame, error) {
	var frames []types.RawFrame
	c := binary.NewCursor(body)

	for c.Len() > 0 {
		if binary.AllZero(body[c.Offset():]) {
			break
		}

		id := c.Next(4, "frame id")
		size := binary.Read[uint32](c, "frame size")
		if err := c.Err(); err != nil {
			return frames, err
		}
		if size == 0 {
			break
		}

		flags := c.Next(2, fmt.Sprintf("frame %s flags", id))
		content := c.Next(int(size), fmt.Sprintf("frame %s content", id))
		if err := c.Err(); err != nil {
			return frames, err
		}

		frames = append(frames, types.RawFrame{
			ID:      string(id),
			Size:    size,
			Flags:   [2]byte(flags),
			Content: content,
		})
	}

	return frames, nil
}

// Read decodes the tag at the start of src: the header, then every raw
// frame in the body.
//
// Errors from ReadHeader are returned as is. A body shorter than declared
// is not an error: the tag carries the frames split before the shortfall
// and a Warning with Stage "body".
func Read(src io.Reader) (*types.Tag, error) {
	r := binary.NewReader(src)

	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	base := r.Offset()
	want := FramesSize(h)
	body, err := r.ReadUpTo(int64(want), "tag body")
	if err != nil {
		return nil, err
	}

	frames, err := Split(body)
	var te *types.TruncatedError
	switch {
	case errors.As(err, &te):
		te.Offset += base
	case err == nil && len(body) < int(want):
		te = &types.TruncatedError{What: "tag body", Offset: base, Want: int(want), Got: len(body)}
	}

	tag := &types.Tag{Header: h, Frames: frames}
	if te != nil {
		tag.Warnings = append(tag.Warnings, types.Warning{
			Stage:   "body",
			Message: "tag body truncated",
			Offset:  te.Offset,
			Err:     te,
		})
	}
	return tag, nil
}

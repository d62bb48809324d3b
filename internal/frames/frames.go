// Package frames implements the decoders for the frame families this module
// understands: text information, comments, attached pictures and chapters.
package frames

import (
	"fmt"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/text"
	"github.com/simonhull/id3meta/internal/types"
)

// Default returns the decoders in their default priority order.
func Default() []registry.Decoder {
	return []registry.Decoder{
		ChapterDecoder{},
		TextDecoder{},
		CommentDecoder{},
		PictureDecoder{},
	}
}

// tooShort reports content that cannot hold a frame's fixed fields.
func tooShort(raw types.RawFrame, need int) error {
	return fmt.Errorf("%w: %d bytes of content, need at least %d", types.ErrFrameTooShort, len(raw.Content), need)
}

// encodedString reads a terminated string in enc and decodes it.
func encodedString(c *binary.Cursor, enc text.Encoding) string {
	return enc.Decode(c.UntilTerminator(enc.TerminatorSize()))
}

// trimTerminators drops trailing terminator units.
func trimTerminators(b []byte, enc text.Encoding) []byte {
	unit := enc.TerminatorSize()
	for len(b) >= unit && binary.AllZero(b[len(b)-unit:]) {
		if unit == 2 && len(b)%2 != 0 {
			break
		}
		b = b[:len(b)-unit]
	}
	return b
}

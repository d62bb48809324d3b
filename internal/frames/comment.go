package frames

import (
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/text"
	"github.com/simonhull/id3meta/internal/types"
)

// CommentDecoder decodes COMM frames:
//
//	encoding     $xx
//	language     $xx xx xx
//	short text   <string according to encoding> $00 (00)
//	text         <string according to encoding>
type CommentDecoder struct{}

func (CommentDecoder) Supports(id string) bool {
	return id == "COMM"
}

// Decode requires the encoding and language bytes. An unterminated short
// text runs to the end of the content and leaves the text empty.
func (CommentDecoder) Decode(raw types.RawFrame, _ registry.Dispatcher) (types.Frame, error) {
	if len(raw.Content) < 4 {
		return nil, tooShort(raw, 4)
	}

	c := binary.NewCursor(raw.Content)
	enc := text.Select(binary.Read[uint8](c, "encoding"))
	lang := c.Next(3, "language")

	short := encodedString(c, enc)
	c.SkipZeros(enc.TerminatorSize())
	full := enc.Decode(trimTerminators(c.Rest(), enc))

	if err := c.Err(); err != nil {
		return nil, err
	}
	return types.Comment{
		Language:  string(lang),
		ShortText: short,
		Text:      full,
	}, nil
}

package frames

import (
	"slices"

	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/text"
	"github.com/simonhull/id3meta/internal/types"
)

// TextIDs lists the text information frames TextDecoder accepts.
var TextIDs = []string{"TIT2", "TYER", "TPE1", "TALB", "TPUB", "TIT3", "TCON", "TCOP", "TENC"}

// TextDecoder decodes text information frames:
//
//	encoding  $xx
//	text      <string according to encoding>
type TextDecoder struct{}

func (TextDecoder) Supports(id string) bool {
	return slices.Contains(TextIDs, id)
}

// Decode requires at least the encoding byte and one byte of text.
// Trailing terminators are not part of the text.
func (TextDecoder) Decode(raw types.RawFrame, _ registry.Dispatcher) (types.Frame, error) {
	if len(raw.Content) < 2 {
		return nil, tooShort(raw, 2)
	}

	enc := text.Select(raw.Content[0])
	return types.TextInformation{
		FrameID: raw.ID,
		Text:    enc.Decode(trimTerminators(raw.Content[1:], enc)),
	}, nil
}

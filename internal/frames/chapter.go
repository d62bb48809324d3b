package frames

import (
	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/types"
)

// ChapterDecoder decodes CHAP frames:
//
//	element id    <latin string> $00
//	start time    $xx xx xx xx
//	end time      $xx xx xx xx
//	start offset  $xx xx xx xx
//	end offset    $xx xx xx xx
//	sub frames    <frames>
//
// Only the first embedded sub-frame is decoded; the rest are ignored.
type ChapterDecoder struct{}

func (ChapterDecoder) Supports(id string) bool {
	return id == "CHAP"
}

// Decode fails only when the four times and offsets do not fit the frame.
// A chapter without a sub-frame, or whose sub-frame is cut short or cannot
// be decoded, is still returned with SubFrame nil.
func (ChapterDecoder) Decode(raw types.RawFrame, d registry.Dispatcher) (types.Frame, error) {
	c := binary.NewCursor(raw.Content)

	c.UntilTerminator(1) // element id
	ch := types.Chapter{
		StartTime:   binary.Read[uint32](c, "start time"),
		EndTime:     binary.Read[uint32](c, "end time"),
		StartOffset: binary.Read[uint32](c, "start offset"),
		EndOffset:   binary.Read[uint32](c, "end offset"),
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	if c.Len() == 0 || binary.AllZero(raw.Content[c.Offset():]) {
		return ch, nil
	}

	id := c.Next(4, "sub frame id")
	size := binary.Read[uint32](c, "sub frame size")
	c.Next(2, "sub frame flags")
	content := c.Next(int(size), "sub frame content")
	if c.Err() == nil && d != nil {
		sub, err := d.Dispatch(types.RawFrame{ID: string(id), Size: size, Content: content})
		if err == nil {
			ch.SubFrame = sub
		}
	}
	return ch, nil
}

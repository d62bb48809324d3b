package frames

import (
	"bytes"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/registry"
	"github.com/simonhull/id3meta/internal/text"
	"github.com/simonhull/id3meta/internal/types"
)

// PictureDecoder decodes APIC frames:
//
//	encoding      $xx
//	MIME type     <latin string> $00
//	picture type  $xx
//	description   <string according to encoding> $00 (00)
//	picture data  <binary data>
type PictureDecoder struct{}

func (PictureDecoder) Supports(id string) bool {
	return id == "APIC"
}

// Decode needs only the encoding byte. Missing fields are left empty and
// HasPictureType is false when the content ends before the type byte.
// The MIME type is read as UTF-8 regardless of the encoding byte.
func (PictureDecoder) Decode(raw types.RawFrame, _ registry.Dispatcher) (types.Frame, error) {
	if len(raw.Content) < 1 {
		return nil, tooShort(raw, 1)
	}

	c := binary.NewCursor(raw.Content)
	enc := text.Select(binary.Read[uint8](c, "encoding"))

	pic := types.AttachedPicture{
		MIMEType: text.UTF8.Decode(c.UntilTerminator(1)),
	}
	if c.Len() > 0 {
		pic.PictureType = types.PictureType(binary.Read[uint8](c, "picture type"))
		pic.HasPictureType = true
	}
	pic.Description = encodedString(c, enc)
	pic.ImageData = bytes.Clone(c.Rest())

	if err := c.Err(); err != nil {
		return nil, err
	}
	return pic, nil
}

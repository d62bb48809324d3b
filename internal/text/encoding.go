// Package text decodes the strings embedded in ID3v2.3 frames.
//
// Frames that carry text start with an encoding selector byte; every string
// that follows in the frame uses the selected encoding unless the frame
// layout says otherwise.
package text

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is a text encoding chosen by a frame's encoding selector byte.
type Encoding byte

const (
	// Latin1 is ISO-8859-1, selected by 0x00.
	Latin1 Encoding = iota
	// UTF16 is UTF-16 with an optional byte order mark (big-endian without
	// one), selected by any value other than 0x00 and 0x03.
	UTF16
	// UTF8 is selected by 0x03.
	UTF8
)

// Selector bytes.
const (
	SelectorLatin1 byte = 0x00
	SelectorUTF8   byte = 0x03
)

// Select maps an encoding selector byte to an Encoding.
func Select(b byte) Encoding {
	switch b {
	case SelectorLatin1:
		return Latin1
	case SelectorUTF8:
		return UTF8
	default:
		return UTF16
	}
}

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "ISO-8859-1"
	case UTF8:
		return "UTF-8"
	default:
		return "UTF-16"
	}
}

// TerminatorSize returns the number of zero bytes that terminate a string
// in this encoding.
func (e Encoding) TerminatorSize() int {
	if e == UTF16 {
		return 2
	}
	return 1
}

// Decode converts b to a Go string.
//
// Decoding never fails: Latin-1 maps every byte, invalid UTF-8 is returned
// as is, and malformed UTF-16 yields U+FFFD.
func (e Encoding) Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	var dec *encoding.Decoder
	switch e {
	case Latin1:
		dec = charmap.ISO8859_1.NewDecoder()
	case UTF8:
		return string(b)
	default:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	}

	out, err := dec.Bytes(b)
	if err != nil {
		return string(bytes.ToValidUTF8(b, []byte("�")))
	}
	return string(out)
}

package binary

import (
	"bytes"
	"encoding/binary"
)

// EncodeSynchsafe encodes n (at most 28 bits) as a synchsafe integer.
func EncodeSynchsafe(n uint32) [4]byte {
	return [4]byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// Writer builds ID3v2.3 tags byte by byte. It is used to produce fixtures;
// this package never writes tags to media files.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) *Writer {
	w.buf.Write(b)
	return w
}

// WriteString appends a string as raw bytes.
func (w *Writer) WriteString(s string) *Writer {
	w.buf.WriteString(s)
	return w
}

// WriteSynchsafe appends n as a synchsafe integer.
func (w *Writer) WriteSynchsafe(n uint32) *Writer {
	b := EncodeSynchsafe(n)
	w.buf.Write(b[:])
	return w
}

// Write appends a value of type T in big-endian byte order.
// T must be uint8, uint16, or uint32.
func Write[T uint8 | uint16 | uint32](w *Writer, val T) *Writer {
	var zero T
	switch any(zero).(type) {
	case uint8:
		w.buf.WriteByte(byte(val))
	case uint16:
		w.buf.Write(binary.BigEndian.AppendUint16(nil, uint16(val)))
	case uint32:
		w.buf.Write(binary.BigEndian.AppendUint32(nil, uint32(val)))
	}
	return w
}

// Frame appends a frame: 4-byte id, plain size, two zero flag bytes, content.
func (w *Writer) Frame(id string, content []byte) *Writer {
	w.buf.WriteString(id)
	Write(w, uint32(len(content)))
	w.buf.Write([]byte{0, 0})
	w.buf.Write(content)
	return w
}

// Header appends a 10-byte ID3v2 header with the given version, flags and
// synchsafe body size.
func (w *Writer) Header(major, minor, flags byte, bodySize uint32) *Writer {
	w.buf.WriteString("ID3")
	w.buf.Write([]byte{major, minor, flags})
	return w.WriteSynchsafe(bodySize)
}

// Tag returns a complete ID3v2.3 tag whose header declares len(body).
func Tag(body []byte) []byte {
	w := NewWriter().Header(3, 0, 0, uint32(len(body)))
	w.WriteBytes(body)
	return w.Bytes()
}

// Frame returns a single encoded frame.
func Frame(id string, content []byte) []byte {
	return NewWriter().Frame(id, content).Bytes()
}

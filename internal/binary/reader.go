// Package binary provides bounds-checked binary reading primitives for ID3v2 tags.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3meta/internal/types"
)

// Synchsafe decodes a 28-bit synchsafe integer: the low 7 bits of each of
// four bytes, most significant byte first.
func Synchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// Uint32 decodes a plain big-endian 32-bit integer.
func Uint32(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// Reader reads a byte source strictly in order, tracking the offset from
// where it started. Every read either fills the requested length or fails
// with a *types.TruncatedError.
type Reader struct {
	r      io.Reader
	offset int64
}

// NewReader creates a new Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull reads exactly n bytes.
func (r *Reader) ReadFull(n int, what string) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.offset += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return buf[:got], &types.TruncatedError{What: what, Offset: r.offset - int64(got), Want: n, Got: got}
		}
		return buf[:got], fmt.Errorf("read %s at offset %d: %w", what, r.offset-int64(got), err)
	}
	return buf, nil
}

// ReadUpTo reads at most n bytes and returns what the source had.
// A short result is not an error; the caller decides what it means.
func (r *Reader) ReadUpTo(n int64, what string) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r.r, n))
	r.offset += int64(len(buf))
	if err != nil {
		return buf, fmt.Errorf("read %s at offset %d: %w", what, r.offset, err)
	}
	return buf, nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int64, what string) error {
	got, err := io.CopyN(io.Discard, r.r, n)
	r.offset += got
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &types.TruncatedError{What: what, Offset: r.offset - got, Want: int(n), Got: int(got)}
		}
		return fmt.Errorf("skip %s at offset %d: %w", what, r.offset-got, err)
	}
	return nil
}

// Cursor consumes a byte slice front to back with deferred error checking.
//
// The first failed read is remembered; later reads return zero values
// without touching the data. Check Err once after a run of reads:
//
//	c := binary.NewCursor(content)
//	start := binary.Read[uint32](c, "start time")
//	end := binary.Read[uint32](c, "end time")
//	if err := c.Err(); err != nil {
//		return err
//	}
type Cursor struct {
	data   []byte
	offset int
	err    error
}

// NewCursor creates a new Cursor at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.offset
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Err returns the first error encountered, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Next consumes exactly n bytes. The returned slice aliases the underlying
// data; its capacity ends at its length so appends never reach the bytes after it.
func (c *Cursor) Next(n int, what string) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > c.Len() {
		c.err = &types.TruncatedError{What: what, Offset: int64(c.offset), Want: n, Got: c.Len()}
		return nil
	}
	b := c.data[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	return b
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.err != nil || c.Len() == 0 {
		return 0, false
	}
	return c.data[c.offset], true
}

// Rest consumes and returns all unread bytes.
func (c *Cursor) Rest() []byte {
	if c.err != nil {
		return nil
	}
	b := c.data[c.offset:len(c.data):len(c.data)]
	c.offset = len(c.data)
	return b
}

// UntilTerminator consumes bytes up to a terminator made of unit zero bytes
// (1 for single-byte encodings, 2 for UTF-16) and then the terminator itself.
// The terminator is searched on unit boundaries. Without a terminator the
// rest of the data is returned.
func (c *Cursor) UntilTerminator(unit int) []byte {
	if c.err != nil {
		return nil
	}
	rest := c.data[c.offset:]
	idx := IndexTerminator(rest, unit)
	if idx < 0 {
		c.offset = len(c.data)
		return rest
	}
	c.offset += idx + unit
	return rest[:idx:idx]
}

// SkipZeros consumes whole units of zero bytes.
func (c *Cursor) SkipZeros(unit int) {
	if c.err != nil || unit < 1 {
		return
	}
	for c.Len() >= unit && isZero(c.data[c.offset:c.offset+unit]) {
		c.offset += unit
	}
}

// Read reads a big-endian value of type T and advances the cursor.
// T must be uint8, uint16, or uint32.
func Read[T uint8 | uint16 | uint32](c *Cursor, what string) T {
	var zero T
	var size int

	// Determine size based on type
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	}

	b := c.Next(size, what)
	if b == nil {
		return zero
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(b[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(b))
	case uint32:
		val = T(binary.BigEndian.Uint32(b))
	}
	return val
}

// IndexTerminator returns the index of the first terminator of unit zero
// bytes aligned on a unit boundary, or -1.
func IndexTerminator(b []byte, unit int) int {
	if unit < 1 {
		unit = 1
	}
	for i := 0; i+unit <= len(b); i += unit {
		if isZero(b[i : i+unit]) {
			return i
		}
	}
	return -1
}

// AllZero reports whether b consists only of zero bytes.
func AllZero(b []byte) bool {
	return isZero(b)
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

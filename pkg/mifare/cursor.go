package mifare

import (
	"errors"
	"fmt"
)

// ErrTruncatedRead is returned when the dump ends before an expected field.
var ErrTruncatedRead = errors.New("truncated read")

// cursor walks an immutable byte slice. Every move is bounds-checked, so a
// short or malformed dump surfaces as ErrTruncatedRead instead of a panic.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// seek moves to an absolute offset.
func (c *cursor) seek(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return fmt.Errorf("%w: seek to 0x%X beyond %d bytes", ErrTruncatedRead, offset, len(c.data))
	}
	c.pos = offset
	return nil
}

// skip advances by n bytes without reading them.
func (c *cursor) skip(n int) error {
	return c.seek(c.pos + n)
}

// read returns the next n bytes and advances past them.
// The returned slice aliases the underlying data.
func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at 0x%X, have %d", ErrTruncatedRead, n, c.pos, len(c.data)-c.pos)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) offset() int {
	return c.pos
}

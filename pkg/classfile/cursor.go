package classfile

import (
	"encoding/binary"
	"fmt"
)

// cursor is a big-endian reader with a sticky error: once a read runs past the end of
// the data, every following read returns zero values and err stays set.
type cursor struct {
	data []byte
	pos  int
	err  error
}

func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if n < 0 || len(c.data)-c.pos < n {
		c.err = fmt.Errorf("%w at offset %d", errTruncated, c.pos)
		return false
	}
	return true
}

func (c *cursor) u1() uint8 {
	if !c.need(1) {
		return 0
	}
	v := c.data[c.pos]
	c.pos++
	return v
}

func (c *cursor) u2() uint16 {
	if !c.need(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) u4() uint32 {
	if !c.need(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) take(n int) []byte {
	if !c.need(n) {
		return nil
	}
	v := c.data[c.pos : c.pos+n]
	c.pos += n
	return v
}

func (c *cursor) skip(n int) {
	if c.need(n) {
		c.pos += n
	}
}

func (c *cursor) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format, args...)
	}
}

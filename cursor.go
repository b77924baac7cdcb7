package bytecursor

import "errors"

// Contract violations panic with one of these sentinels. They are
// programmer errors, not recoverable conditions: no operation performs
// partial work before its checks pass, so a caller that recovers can
// still rely on the buffer state. errors.Is works on recovered values.
var (
	ErrInvalidMark      = errors.New("invalid mark")
	ErrIllegalArgument  = errors.New("illegal argument")
	ErrBufferUnderflow  = errors.New("buffer underflow")
	ErrBufferOverflow   = errors.New("buffer overflow")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// Cursor is the bookkeeping half of a buffer: the classic
//
//	mark <= position <= limit <= capacity
//
// tuple with mark == -1 meaning unset. It carries no bytes. Every view
// kind embeds one Cursor by value, so the window protocol is written
// once here and shared.
type Cursor struct {
	mark     int
	position int
	limit    int
	capacity int
}

// NewCursor returns a cursor with position 0 and no mark. Panics with
// ErrIllegalArgument when capacity is negative or limit falls outside
// [0, capacity].
func NewCursor(capacity, limit int) Cursor {
	if capacity < 0 {
		panic(ErrIllegalArgument)
	}
	c := Cursor{mark: -1, capacity: capacity}
	c.SetLimit(limit)
	return c
}

func (c *Cursor) Capacity() int { return c.capacity }
func (c *Cursor) Position() int { return c.position }
func (c *Cursor) Limit() int    { return c.limit }

// Remaining reports how many bytes are left between position and limit.
func (c *Cursor) Remaining() int { return c.limit - c.position }

func (c *Cursor) HasRemaining() bool { return c.position < c.limit }

// Mark saves the current position for a later Reset.
func (c *Cursor) Mark() { c.mark = c.position }

// Reset moves position back to the mark. Panics with ErrInvalidMark if
// no mark is set.
func (c *Cursor) Reset() {
	if c.mark < 0 {
		panic(ErrInvalidMark)
	}
	c.position = c.mark
}

// SetLimit moves the window's upper bound. Position is pulled back if it
// now lies past the limit; a mark past the limit is discarded.
func (c *Cursor) SetLimit(n int) {
	if n < 0 || n > c.capacity {
		panic(ErrIllegalArgument)
	}
	c.limit = n
	if c.position > c.limit {
		c.position = c.limit
	}
	if c.mark > c.limit {
		c.mark = -1
	}
}

// SetPosition moves position inside [0, limit]. A mark past the new
// position is discarded.
func (c *Cursor) SetPosition(n int) {
	if n < 0 || n > c.limit {
		panic(ErrIllegalArgument)
	}
	c.position = n
	if c.mark > c.position {
		c.mark = -1
	}
}

// Clear readies the cursor for a fresh sequence of writes: position 0,
// limit at capacity, mark unset. The bytes themselves are untouched.
func (c *Cursor) Clear() {
	c.position = 0
	c.limit = c.capacity
	c.discardMark()
}

// Flip switches from writing to reading: the bytes written so far become
// the readable window.
func (c *Cursor) Flip() {
	c.limit = c.position
	c.position = 0
	c.discardMark()
}

// Rewind moves position back to 0 for re-reading the current window.
func (c *Cursor) Rewind() {
	c.position = 0
	c.discardMark()
}

func (c *Cursor) discardMark() { c.mark = -1 }

// nextGetIndex hands out the current position for a single-byte read and
// advances past it.
func (c *Cursor) nextGetIndex() int {
	if c.position >= c.limit {
		panic(ErrBufferUnderflow)
	}
	p := c.position
	c.position++
	return p
}

// nextGetIndexN reserves n bytes starting at position for a bulk read.
func (c *Cursor) nextGetIndexN(n int) int {
	if c.limit-c.position < n {
		panic(ErrBufferUnderflow)
	}
	p := c.position
	c.position += n
	return p
}

// nextPutIndex hands out the current position for a single-byte write
// and advances past it. Writes past limit are overflow even when
// capacity has more room: limit defines the active window.
func (c *Cursor) nextPutIndex() int {
	if c.position >= c.limit {
		panic(ErrBufferOverflow)
	}
	p := c.position
	c.position++
	return p
}

// nextPutIndexN reserves n bytes starting at position for a bulk write.
func (c *Cursor) nextPutIndexN(n int) int {
	if c.limit-c.position < n {
		panic(ErrBufferOverflow)
	}
	p := c.position
	c.position += n
	return p
}

// checkIndex validates a positional access at i without moving the
// cursor.
func (c *Cursor) checkIndex(i int) int {
	if i < 0 || i >= c.limit {
		panic(ErrIndexOutOfBounds)
	}
	return i
}

// checkIndexN validates a positional access of n bytes starting at i.
// The exact fit i+n == limit is allowed.
func (c *Cursor) checkIndexN(i, n int) int {
	if i < 0 || n < 0 || n > c.limit-i {
		panic(ErrIndexOutOfBounds)
	}
	return i
}

// checkBounds validates an (off, length) range against a backing size.
// The single OR catches negative inputs and additive overflow in one
// branch.
func checkBounds(off, length, size int) {
	if off|length|(off+length)|(size-(off+length)) < 0 {
		panic(ErrIndexOutOfBounds)
	}
}

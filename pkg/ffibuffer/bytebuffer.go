// Package ffibuffer carries an owned byte array across a process or
// library boundary as an explicit (length, pointer) pair. It is a
// boundary-crossing convenience, not part of the cursor/view engine:
// the core treats it as an opaque producer and consumer of plain byte
// sequences.
package ffibuffer

import "unsafe"

// ByteBuffer is the carrier. If this were a C struct it would be
//
//	struct ByteBuffer {
//	    int64_t len;   // never negative
//	    uint8_t *data; // nullable
//	};
//
// and the field order is part of the contract: the consumer on the other
// side of the boundary reads this layout directly. int64 rather than
// uint64/size_t because common JNA-style bindings interop badly with
// unsigned widths.
//
// A ByteBuffer does not free itself. Destroy or DestroyIntoBytes must be
// called exactly once on a buffer that owns its bytes; after that the
// carrier is empty and accessors see no data. Destroying twice or using
// a slice obtained before Destroy is a caller contract violation.
type ByteBuffer struct {
	len  int64
	data *byte
}

// NewWithSize returns a carrier over a fresh zero-filled array of the
// requested size.
func NewWithSize(n int) ByteBuffer {
	return FromBytes(make([]byte, n))
}

// FromBytes takes ownership of b. The caller must not touch b afterwards
// except through the carrier.
func FromBytes(b []byte) ByteBuffer {
	// SliceData keeps the empty-but-allocated case distinguishable from
	// the nil case, matching the nullable-pointer contract.
	return ByteBuffer{len: int64(len(b)), data: unsafe.SliceData(b)}
}

func (b *ByteBuffer) Len() int { return int(b.len) }

// AsSlice views the contents read-only. The slice aliases the carrier's
// array: the caller must not write through it or retain it past Destroy.
func (b *ByteBuffer) AsSlice() []byte {
	if b.data == nil {
		return nil
	}
	return unsafe.Slice(b.data, b.len)
}

// AsMutableSlice views the contents writable. The caller must not retain
// it past Destroy.
func (b *ByteBuffer) AsMutableSlice() []byte {
	if b.data == nil {
		return nil
	}
	return unsafe.Slice(b.data, b.len)
}

// DestroyIntoBytes empties the carrier and returns the backing array,
// handing ownership back to the caller.
func (b *ByteBuffer) DestroyIntoBytes() []byte {
	if b.data == nil {
		return nil
	}
	out := unsafe.Slice(b.data, b.len)
	b.data = nil
	b.len = 0
	return out
}

// Destroy empties the carrier, dropping its reference to the backing
// array so the allocator can reclaim it.
func (b *ByteBuffer) Destroy() {
	b.data = nil
	b.len = 0
}

package bytecursor

// View is a cursor-addressed window over a shared backing store. Views
// derived from one another (Slice, Duplicate) reference the same bytes;
// each keeps its own independent cursor. The offset translates a
// view-local index into a store index, so a slice's index 0 lands on its
// parent's position.
//
// A View is not safe for concurrent use, and two views over the same
// store must not be mutated from different goroutines. SyncView is the
// variant for cross-goroutine sharing.
type View struct {
	Cursor
	hb     []byte
	offset int
}

// New allocates a zero-filled store of the given capacity and returns a
// view over it with position 0 and the given limit.
func New(capacity, limit int) *View {
	return &View{Cursor: NewCursor(capacity, limit), hb: make([]byte, capacity)}
}

// NewFromBytes returns a view over b windowed to b[off:off+length]. The
// bytes are referenced, not copied: writes through the view are visible
// in b and vice versa.
func NewFromBytes(b []byte, off, length int) *View {
	checkBounds(off, length, len(b))
	c := NewCursor(len(b), off+length)
	c.SetPosition(off)
	return &View{Cursor: c, hb: b}
}

// Slice returns a view over the remaining window. The slice's index 0
// aliases this view's current position: cursor motion on either side is
// independent, but bytes written through one are seen by the other. The
// store is shared, never copied.
func (v *View) Slice() *View {
	rem := v.Remaining()
	return &View{
		Cursor: NewCursor(rem, rem),
		hb:     v.hb,
		offset: v.offset + v.position,
	}
}

// Duplicate returns a view over the same window with its own copy of the
// cursor. Same offset, same bytes.
func (v *View) Duplicate() *View {
	return &View{Cursor: v.Cursor, hb: v.hb, offset: v.offset}
}

// ix maps a view-local index into the backing store. Every byte access
// funnels through it.
func (v *View) ix(i int) int { return i + v.offset }

// Get reads the byte at position and advances past it.
func (v *View) Get() byte { return v.hb[v.ix(v.nextGetIndex())] }

// GetAt reads the byte at index i. The cursor does not move.
func (v *View) GetAt(i int) byte { return v.hb[v.ix(v.checkIndex(i))] }

// Put writes x at position and advances past it.
func (v *View) Put(x byte) { v.hb[v.ix(v.nextPutIndex())] = x }

// PutAt writes x at index i. The cursor does not move.
func (v *View) PutAt(x byte, i int) { v.hb[v.ix(v.checkIndex(i))] = x }

// GetInto copies length bytes from the window starting at position into
// dst[off:off+length]. Checks precede any byte movement; on panic dst is
// untouched. Advances position by length.
func (v *View) GetInto(dst []byte, off, length int) {
	checkBounds(off, length, len(dst))
	start := v.ix(v.nextGetIndexN(length))
	copy(dst[off:off+length], v.hb[start:start+length])
}

// PutFrom copies src[off:off+length] into the window starting at
// position. Advances position by length. Insufficient room in the window
// is ErrBufferOverflow.
func (v *View) PutFrom(src []byte, off, length int) {
	checkBounds(off, length, len(src))
	start := v.ix(v.nextPutIndexN(length))
	copy(v.hb[start:start+length], src[off:off+length])
}

// PutView copies src.Remaining() bytes from src's position into this
// view's position, advancing both cursors. src may alias the same store
// at an overlapping range; both source and destination offsets are
// resolved before any byte moves and copy has memmove semantics, so
// overlap cannot corrupt the transfer. src must not be the receiver
// itself.
func (v *View) PutView(src *View) {
	if src == v {
		panic(ErrIllegalArgument)
	}
	n := src.Remaining()
	if n > v.Remaining() {
		panic(ErrBufferOverflow)
	}
	srcStart := src.ix(src.position)
	dstStart := v.ix(v.position)
	copy(v.hb[dstStart:dstStart+n], src.hb[srcStart:srcStart+n])
	src.SetPosition(src.position + n)
	v.SetPosition(v.position + n)
}

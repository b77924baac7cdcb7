package bytecursor

// ByteView is an immutable copy of a view's remaining window, safe to
// hand across API boundaries: it holds its own bytes and its accessors
// return copies, so no holder can reach the shared backing store.
type ByteView struct {
	data []byte
}

// Snapshot copies the remaining window into a ByteView. The view's
// cursor does not move.
func (v *View) Snapshot() ByteView {
	start := v.ix(v.position)
	return ByteView{data: cloneBytes(v.hb[start : start+v.Remaining()])}
}

func (b ByteView) Len() int { return len(b.data) }

// ByteSlice returns a copy of the data.
func (b ByteView) ByteSlice() []byte { return cloneBytes(b.data) }

func (b ByteView) String() string { return string(b.data) }

// At returns the byte at index i.
func (b ByteView) At(i int) byte { return b.data[i] }

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
